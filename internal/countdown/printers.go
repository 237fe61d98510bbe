package countdown

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rishabh06704/getdaysleft/internal/log"
)

// printerTTL is how long an unused printer stays cached. Each hit pushes
// the expiry out again.
const printerTTL = time.Hour

// PrinterCache memoises message printers by language, so formatters built
// on every config reload share one printer per locale.
type PrinterCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewPrinterCache returns an empty cache backed by go-cache.
func NewPrinterCache() *PrinterCache {
	return &PrinterCache{
		cache: gocache.New(printerTTL, 2*printerTTL),
		ttl:   printerTTL,
	}
}

// Printer returns the cached printer for tag, creating it on a miss.
func (c *PrinterCache) Printer(tag language.Tag) *message.Printer {
	key := tag.String()
	if v, ok := c.cache.Get(key); ok {
		if p, ok := v.(*message.Printer); ok {
			c.cache.Set(key, p, c.ttl)
			return p
		}
		log.Error(log.CatCache, "unexpected value in printer cache", "locale", key)
	}

	log.Debug(log.CatCache, "printer cache miss", "locale", key)
	p := message.NewPrinter(tag)
	c.cache.Set(key, p, c.ttl)
	return p
}

// Len returns the number of cached printers.
func (c *PrinterCache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops every cached printer.
func (c *PrinterCache) Flush() {
	c.cache.Flush()
}
