// Package requirement defines the immutable pipeline input: the free-text
// business requirement and the optional enterprise context supplied
// alongside it. Neither is mutated by any downstream stage.
package requirement

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Requirement is the free-text business need submitted for composition.
type Requirement struct {
	Description string             `json:"description"`
	Context     *EnterpriseContext `json:"context,omitempty"`
}

// EnterpriseContext holds optional partial context about the organization
// behind the requirement. Every field may be empty.
type EnterpriseContext struct {
	Industry         string   `json:"industry,omitempty"`
	OrganizationSize string   `json:"organization_size,omitempty"`
	RegulatoryList   []string `json:"regulatory_list,omitempty"`
	TechStack        []string `json:"tech_stack,omitempty"`
	Constraints      []string `json:"constraints,omitempty"`
	Preferences      []string `json:"preferences,omitempty"`
}

// LoadContext reads an EnterpriseContext from a JSON file. Returns nil and
// no error if the file does not exist or holds no populated fields.
func LoadContext(path string) (*EnterpriseContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading context file: %w", err)
	}

	var ec EnterpriseContext
	if err := json.Unmarshal(data, &ec); err != nil {
		return nil, fmt.Errorf("parsing context file: %w", err)
	}
	if ec.IsEmpty() {
		return nil, nil
	}
	return &ec, nil
}

// Save writes the context to a JSON file, creating parent directories.
func (c *EnterpriseContext) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating context directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling context: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing context file: %w", err)
	}
	return nil
}

// IsEmpty reports whether no fields are populated.
func (c *EnterpriseContext) IsEmpty() bool {
	return c.Industry == "" &&
		c.OrganizationSize == "" &&
		len(c.RegulatoryList) == 0 &&
		len(c.TechStack) == 0 &&
		len(c.Constraints) == 0 &&
		len(c.Preferences) == 0
}

// ToPromptSection formats the context as a text block for injection into a
// reasoning prompt. Returns "" when nothing is populated.
func (c *EnterpriseContext) ToPromptSection() string {
	if c == nil || c.IsEmpty() {
		return ""
	}

	var b strings.Builder
	if c.Industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", c.Industry)
	}
	if c.OrganizationSize != "" {
		fmt.Fprintf(&b, "Organization size: %s\n", c.OrganizationSize)
	}
	if len(c.RegulatoryList) > 0 {
		fmt.Fprintf(&b, "Regulatory frameworks in scope: %s\n", strings.Join(c.RegulatoryList, ", "))
	}
	if len(c.TechStack) > 0 {
		fmt.Fprintf(&b, "Existing tech stack: %s\n", strings.Join(c.TechStack, ", "))
	}
	if len(c.Constraints) > 0 {
		fmt.Fprintf(&b, "Constraints: %s\n", strings.Join(c.Constraints, ", "))
	}
	if len(c.Preferences) > 0 {
		fmt.Fprintf(&b, "Preferences: %s\n", strings.Join(c.Preferences, ", "))
	}
	return b.String()
}
