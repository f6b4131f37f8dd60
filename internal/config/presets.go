package config

import (
	"fmt"
	"log"
	"sort"

	"github.com/nhath/ezscaffold/internal/scaffold"
)

// Preset is a named, saved form
type Preset struct {
	Name string `toml:"name"`
	Tool string `toml:"tool"` // pmc, cli
	// ConnectionString is kept in memory for usage
	ConnectionString string `toml:"-"`
	// StoredConnectionString is the one persisted in the config file
	StoredConnectionString string `toml:"connection_string,omitempty"`
	Encrypted              bool   `toml:"encrypted,omitempty"`

	Provider         string `toml:"provider,omitempty"`
	OutputDir        string `toml:"output_dir,omitempty"`
	ContextDir       string `toml:"context_dir,omitempty"`
	ContextName      string `toml:"context_name,omitempty"`
	Schemas          string `toml:"schemas,omitempty"`
	Tables           string `toml:"tables,omitempty"`
	UseAnnotations   bool   `toml:"data_annotations,omitempty"`
	UseDatabaseNames bool   `toml:"use_database_names,omitempty"`
	UseForce         bool   `toml:"force,omitempty"`

	// locked is set while an encrypted value could not be decrypted
	locked bool
}

// PresetFromState captures a form under a name
func PresetFromState(name string, s scaffold.FormState) Preset {
	return Preset{
		Name:             name,
		Tool:             string(s.Tool),
		ConnectionString: s.ConnectionString,
		Provider:         s.Provider,
		OutputDir:        s.OutputDir,
		ContextDir:       s.ContextDir,
		ContextName:      s.ContextName,
		Schemas:          s.Schemas,
		Tables:           s.Tables,
		UseAnnotations:   s.UseAnnotations,
		UseDatabaseNames: s.UseDatabaseNames,
		UseForce:         s.UseForce,
	}
}

// FormState converts the preset back into a form. Unknown tools fall back to pmc.
func (p Preset) FormState() scaffold.FormState {
	tool, err := scaffold.ParseTool(p.Tool)
	if err != nil {
		tool = scaffold.PackageManager
	}
	return scaffold.FormState{
		Tool:             tool,
		ConnectionString: p.ConnectionString,
		Provider:         p.Provider,
		OutputDir:        p.OutputDir,
		ContextDir:       p.ContextDir,
		ContextName:      p.ContextName,
		Schemas:          p.Schemas,
		Tables:           p.Tables,
		UseAnnotations:   p.UseAnnotations,
		UseDatabaseNames: p.UseDatabaseNames,
		UseForce:         p.UseForce,
	}
}

// GetPreset retrieves a preset by name
func (c *Config) GetPreset(name string) (*Preset, error) {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset not found: %s", name)
}

// SavePreset adds the preset or replaces the one with the same name, then persists
func (c *Config) SavePreset(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	c.upsertPreset(p)
	return c.Save()
}

func (c *Config) upsertPreset(p Preset) {
	for i := range c.Presets {
		if c.Presets[i].Name == p.Name {
			c.Presets[i] = p
			return
		}
	}
	c.Presets = append(c.Presets, p)
}

// DeletePreset removes a preset from the config
func (c *Config) DeletePreset(name string) error {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			c.Presets = append(c.Presets[:i], c.Presets[i+1:]...)
			return c.Save()
		}
	}
	return fmt.Errorf("preset not found: %s", name)
}

// ListPresets returns all preset names, sorted
func (c *Config) ListPresets() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}

// encryptedPresets returns copies of the presets ready to be written out
func (c *Config) encryptedPresets() []Preset {
	out := make([]Preset, len(c.Presets))
	copy(out, c.Presets)

	var key []byte
	for i := range out {
		if out[i].locked {
			// keep the stored ciphertext untouched
			continue
		}
		if out[i].ConnectionString == "" {
			out[i].StoredConnectionString = ""
			out[i].Encrypted = false
			continue
		}
		if key == nil {
			k, err := masterKey()
			if err != nil {
				log.Printf("config: keyring unavailable, storing connection strings in plain text: %v", err)
				key = []byte{}
			} else {
				key = k
			}
		}
		if len(key) > 0 {
			if enc, err := Encrypt(out[i].ConnectionString, key); err == nil {
				out[i].StoredConnectionString = enc
				out[i].Encrypted = true
				continue
			}
		}
		out[i].StoredConnectionString = out[i].ConnectionString
		out[i].Encrypted = false
	}
	return out
}

// decryptPresets fills ConnectionString from the persisted value. Presets
// that cannot be decrypted stay locked and are written back unchanged.
func (c *Config) decryptPresets() {
	var key []byte
	var keyErr error
	for i := range c.Presets {
		p := &c.Presets[i]
		if !p.Encrypted {
			p.ConnectionString = p.StoredConnectionString
			continue
		}
		if key == nil && keyErr == nil {
			key, keyErr = masterKey()
			if keyErr != nil {
				log.Printf("config: cannot decrypt presets: %v", keyErr)
			}
		}
		if keyErr != nil {
			p.locked = true
			continue
		}
		plain, err := Decrypt(p.StoredConnectionString, key)
		if err != nil {
			log.Printf("config: preset %s: %v", p.Name, err)
			p.locked = true
			continue
		}
		p.ConnectionString = plain
	}
}
