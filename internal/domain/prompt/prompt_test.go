package prompt_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhao/promptmaster/internal/domain/prompt"
)

func validFields() prompt.Fields {
	return prompt.Fields{
		Title:    "Test Prompt",
		Prompt:   "Do the thing",
		Category: prompt.CategoryCode,
		Type:     prompt.PresentationIcon,
	}
}

func TestFieldsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*prompt.Fields)
		wantErr string
	}{
		{"valid", func(*prompt.Fields) {}, ""},
		{"blank title", func(f *prompt.Fields) { f.Title = "   " }, "title"},
		{"blank prompt", func(f *prompt.Fields) { f.Prompt = "" }, "prompt"},
		{"unknown category", func(f *prompt.Fields) { f.Category = "cooking" }, "category"},
		{"all is not storable", func(f *prompt.Fields) { f.Category = prompt.CategoryAll }, "category"},
		{"unknown complexity", func(f *prompt.Fields) { f.Complexity = "expert" }, "complexity"},
		{"unknown type", func(f *prompt.Fields) { f.Type = "video" }, "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			err := f.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFieldsValidate_DefaultsComplexity(t *testing.T) {
	f := validFields()
	require.NoError(t, f.Validate())
	assert.Equal(t, prompt.ComplexityBeginner, f.Complexity)
}

func TestPatchValidateAndApply(t *testing.T) {
	title := "New Title"
	cat := prompt.CategoryWriting

	patch := prompt.Patch{Title: &title, Category: &cat}
	require.NoError(t, patch.Validate())
	assert.False(t, patch.Empty())

	r := prompt.Record{ID: "x", Title: "Old", Category: prompt.CategoryCode, Prompt: "p", CreatedAt: 42}
	patch.Apply(&r)
	assert.Equal(t, "New Title", r.Title)
	assert.Equal(t, prompt.CategoryWriting, r.Category)
	assert.Equal(t, "p", r.Prompt)
	assert.Equal(t, int64(42), r.CreatedAt)
}

func TestPatchValidate_RejectsBadValues(t *testing.T) {
	empty := " "
	bad := prompt.Category("cooking")
	assert.Error(t, prompt.Patch{Title: &empty}.Validate())
	assert.Error(t, prompt.Patch{Category: &bad}.Validate())
	assert.True(t, prompt.Patch{}.Empty())
	assert.NoError(t, prompt.Patch{}.Validate())
}

func TestEffectiveComplexity(t *testing.T) {
	assert.Equal(t, prompt.ComplexityBeginner, prompt.Record{}.EffectiveComplexity())
	assert.Equal(t, prompt.ComplexityAdvanced, prompt.Record{Complexity: prompt.ComplexityAdvanced}.EffectiveComplexity())
}

func TestIDUnmarshal(t *testing.T) {
	var r prompt.Record

	// Remote rows carry numeric ids.
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "title": "t", "prompt": "p"}`), &r))
	assert.Equal(t, prompt.ID("42"), r.ID)

	// Local entries carry synthesized string ids.
	require.NoError(t, json.Unmarshal([]byte(`{"id": "1700000000000-17", "title": "t", "prompt": "p"}`), &r))
	assert.Equal(t, prompt.ID("1700000000000-17"), r.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": {"nested": true}}`), &r))
}

func TestIDMarshalAlwaysString(t *testing.T) {
	data, err := json.Marshal(prompt.Record{ID: "42", Title: "t", Prompt: "p", Category: prompt.CategoryCode, Type: prompt.PresentationIcon})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"42"`)
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, prompt.ID("7"), prompt.NormalizeID(7))
	assert.Equal(t, prompt.ID("7"), prompt.NormalizeID(int64(7)))
	assert.Equal(t, prompt.ID("7"), prompt.NormalizeID(float64(7)))
	assert.Equal(t, prompt.ID("7"), prompt.NormalizeID("7"))
	assert.Equal(t, prompt.ID("7"), prompt.NormalizeID(json.Number("7")))
}

func TestNewLocalID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := prompt.NewLocalID(now)
	parts := strings.SplitN(string(id), "-", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "1700000000000", parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestSeedCopyIsIndependent(t *testing.T) {
	a := prompt.SeedCopy()
	b := prompt.SeedCopy()
	require.NotEmpty(t, a)
	a[0].Title = "mutated"
	assert.NotEqual(t, a[0].Title, b[0].Title)

	for _, r := range b {
		assert.False(t, r.IsCustom)
		assert.NoError(t, func() error {
			f := prompt.Fields{Title: r.Title, Prompt: r.Prompt, Category: r.Category, Complexity: r.Complexity, Type: r.Type}
			return f.Validate()
		}())
	}
}
