package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rishabh06704/getdaysleft/internal/ui/styles"
)

// settableKeys lists the dotted keys "config set" may change.
var settableKeys = map[string]bool{
	"locale":       true,
	"share.origin": true,
	"share.path":   true,
	"ui.show_help": true,
	"ui.mouse":     true,
	"theme.preset": true,
}

// SettableKeys returns the keys accepted by SetValue, in display order.
func SettableKeys() []string {
	return []string{"locale", "share.origin", "share.path", "ui.show_help", "ui.mouse", "theme.preset"}
}

// SetValue updates a single dotted key in the config file.
// Comments and formatting elsewhere in the file are preserved via yaml.Node.
func SetValue(configPath, key, value string) error {
	if !settableKeys[key] {
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(SettableKeys(), ", "))
	}
	if err := validateValue(key, value); err != nil {
		return err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // G304: user config path
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level is not a mapping")
	}

	node := doc.Content[0]
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		node = childMapping(node, part)
	}
	setScalar(node, parts[len(parts)-1], value)

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

func validateValue(key, value string) error {
	switch key {
	case "locale":
		return Validate(Config{Locale: value, Share: Defaults().Share})
	case "share.origin":
		return ValidateShare(ShareConfig{Origin: value})
	case "theme.preset":
		return styles.ValidateTheme(styles.ThemeConfig{Preset: value})
	case "ui.show_help", "ui.mouse":
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	}
	return nil
}

// childMapping returns the mapping stored under key, creating or replacing it.
func childMapping(parent *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(parent.Content)-1; i += 2 {
		if parent.Content[i].Value == key {
			child := parent.Content[i+1]
			if child.Kind != yaml.MappingNode {
				child = &yaml.Node{Kind: yaml.MappingNode}
				parent.Content[i+1] = child
			}
			return child
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	parent.Content = append(parent.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		child,
	)
	return child
}

func setScalar(parent *yaml.Node, key, value string) {
	tag := "!!str"
	if value == "true" || value == "false" {
		tag = "!!bool"
	}
	for i := 0; i < len(parent.Content)-1; i += 2 {
		if parent.Content[i].Value == key {
			old := parent.Content[i+1]
			parent.Content[i+1] = &yaml.Node{
				Kind:        yaml.ScalarNode,
				Tag:         tag,
				Value:       value,
				LineComment: old.LineComment,
			}
			return
		}
	}
	parent.Content = append(parent.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
	)
}

// writeAtomic writes to a temp file in the same directory, then renames it.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".getdaysleft.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
