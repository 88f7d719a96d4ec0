package prompt

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCode     Category = "code"
	CategoryArt      Category = "mj"
	CategoryWriting  Category = "writing"
	CategoryRoleplay Category = "roleplay"
	CategoryBusiness Category = "business"
	// CategoryCustom marks user-created records. The same literal doubles as
	// the "my favorites" filter sentinel in the query package; the two
	// meanings are unrelated and must stay distinct (see DESIGN.md).
	CategoryCustom Category = "custom"

	// CategoryAll is a filter value only, never stored on a record.
	CategoryAll Category = "all"
)

// Categories lists every storable category, in sidebar order.
var Categories = []Category{
	CategoryCode,
	CategoryArt,
	CategoryWriting,
	CategoryRoleplay,
	CategoryBusiness,
	CategoryCustom,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Complexity string

const (
	ComplexityBeginner     Complexity = "beginner"
	ComplexityIntermediate Complexity = "intermediate"
	ComplexityAdvanced     Complexity = "advanced"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexityBeginner, ComplexityIntermediate, ComplexityAdvanced:
		return true
	}
	return false
}

// Presentation selects which visual field of a record is meaningful.
type Presentation string

const (
	PresentationIcon  Presentation = "icon"
	PresentationImage Presentation = "image"
)

func (p Presentation) Valid() bool {
	return p == PresentationIcon || p == PresentationImage
}

// Record is a single prompt-library entry. ID and CreatedAt are immutable
// after creation; the storage backend assigns both.
type Record struct {
	ID         ID           `json:"id"`
	Title      string       `json:"title"`
	Desc       string       `json:"desc,omitempty"`
	Prompt     string       `json:"prompt"`
	Category   Category     `json:"category"`
	Complexity Complexity   `json:"complexity,omitempty"`
	Type       Presentation `json:"type"`
	Icon       string       `json:"icon,omitempty"`
	Image      string       `json:"image,omitempty"`
	IsCustom   bool         `json:"isCustom"`
	CreatedAt  int64        `json:"createdAt,omitempty"` // epoch milliseconds
}

// EffectiveComplexity treats legacy records with no complexity as beginner.
func (r Record) EffectiveComplexity() Complexity {
	if r.Complexity == "" {
		return ComplexityBeginner
	}
	return r.Complexity
}

// Fields carries the caller-supplied part of a record for create and import.
// The store assigns ID and CreatedAt.
type Fields struct {
	Title      string       `json:"title"`
	Desc       string       `json:"desc,omitempty"`
	Prompt     string       `json:"prompt"`
	Category   Category     `json:"category"`
	Complexity Complexity   `json:"complexity,omitempty"`
	Type       Presentation `json:"type"`
	Icon       string       `json:"icon,omitempty"`
	Image      string       `json:"image,omitempty"`
	IsCustom   bool         `json:"isCustom"`
}

// Validate checks the closed enumerations and required text, defaulting an
// absent complexity to beginner. It mutates the receiver only to apply that
// default.
func (f *Fields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(f.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if !f.Category.Valid() {
		return fmt.Errorf("unknown category %q", f.Category)
	}
	if f.Complexity == "" {
		f.Complexity = ComplexityBeginner
	}
	if !f.Complexity.Valid() {
		return fmt.Errorf("unknown complexity %q", f.Complexity)
	}
	if !f.Type.Valid() {
		return fmt.Errorf("unknown presentation type %q", f.Type)
	}
	return nil
}

// Patch is a partial update. Nil pointers mean "leave unchanged"; an all-nil
// patch is a valid no-op. ID and CreatedAt are not patchable.
type Patch struct {
	Title      *string       `json:"title,omitempty"`
	Desc       *string       `json:"desc,omitempty"`
	Prompt     *string       `json:"prompt,omitempty"`
	Category   *Category     `json:"category,omitempty"`
	Complexity *Complexity   `json:"complexity,omitempty"`
	Type       *Presentation `json:"type,omitempty"`
	Icon       *string       `json:"icon,omitempty"`
	Image      *string       `json:"image,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Desc == nil && p.Prompt == nil &&
		p.Category == nil && p.Complexity == nil && p.Type == nil &&
		p.Icon == nil && p.Image == nil
}

// Validate rejects patches that would move a record outside the closed sets.
func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if p.Prompt != nil && strings.TrimSpace(*p.Prompt) == "" {
		return fmt.Errorf("prompt cannot be empty")
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", *p.Category)
	}
	if p.Complexity != nil && !p.Complexity.Valid() {
		return fmt.Errorf("unknown complexity %q", *p.Complexity)
	}
	if p.Type != nil && !p.Type.Valid() {
		return fmt.Errorf("unknown presentation type %q", *p.Type)
	}
	return nil
}

// Apply copies the set fields of the patch onto the record.
func (p Patch) Apply(r *Record) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Desc != nil {
		r.Desc = *p.Desc
	}
	if p.Prompt != nil {
		r.Prompt = *p.Prompt
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Complexity != nil {
		r.Complexity = *p.Complexity
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Icon != nil {
		r.Icon = *p.Icon
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
}
