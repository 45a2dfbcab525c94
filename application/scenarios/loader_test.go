package scenarios

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
	"ui_automation/infrastructure/pageobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
scenarios:
  - name: type_and_read
    description: typed text reads back
    steps:
      - navigate: ""
      - act: type
        locator: txt_inputs.text_input_field
        text: "abc"
      - assert: text_contains
        locator: txt_inputs.text_input_field
        expected: abc
      - act: press_key
        locator: slider.my_slider
        key: ArrowUp
      - assert: visible
        locator: css=progress[value="60"]
      - fallback:
          primary:
            act: hover_click
            locator: dropdowns.drop_down
            target: dropdowns.opt_three
          secondary:
            act: js_click
            locator: dropdowns.opt_three
          timeout: 2s
      - assert: title_equals
        expected: Web Testing Page
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	scs, err := LoadFile(writeFile(t, validDoc), pageobjects.Default())
	require.NoError(t, err)
	require.Len(t, scs, 1)

	sc := scs[0]
	assert.Equal(t, "type_and_read", sc.Name)
	require.Len(t, sc.Steps, 7)

	assert.Equal(t, entities.Navigate(""), sc.Steps[0])
	assert.Equal(t, entities.TypeText("#myTextInput", "abc"), sc.Steps[1])
	assert.Equal(t, entities.AssertText("#myTextInput", "abc"), sc.Steps[2])
	assert.Equal(t, entities.PressKey("input#myslider", entities.KeyArrowUp, 1), sc.Steps[3])
	assert.Equal(t, entities.AssertVisible(`progress[value="60"]`), sc.Steps[4])

	fb := sc.Steps[5].Fallback
	require.NotNil(t, fb)
	assert.Equal(t, entities.ActionHoverClick, fb.Primary.Type)
	assert.Equal(t, entities.Locator("#dropOption3"), fb.Primary.Target)
	assert.Equal(t, entities.ActionJSClick, fb.Secondary.Type)
	assert.Equal(t, 2*time.Second, fb.Timeout)

	assert.Equal(t, entities.AssertTitle("Web Testing Page"), sc.Steps[6])
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown locator",
			doc:  "scenarios:\n  - name: x\n    steps:\n      - act: click\n        locator: clicks.missing\n",
			want: "clicks.missing",
		},
		{
			name: "unknown action",
			doc:  "scenarios:\n  - name: x\n    steps:\n      - act: double_click\n        locator: clicks.button\n",
			want: "double_click",
		},
		{
			name: "unknown predicate",
			doc:  "scenarios:\n  - name: x\n    steps:\n      - assert: blinking\n        locator: clicks.button\n",
			want: "blinking",
		},
		{
			name: "two kinds in one step",
			doc:  "scenarios:\n  - name: x\n    steps:\n      - navigate: \"\"\n        act: click\n        locator: clicks.button\n",
			want: "exactly one",
		},
		{
			name: "missing name",
			doc:  "scenarios:\n  - steps:\n      - navigate: \"\"\n",
			want: "without name",
		},
		{
			name: "unknown field",
			doc:  "scenarios:\n  - name: x\n    stepz: []\n",
			want: "stepz",
		},
		{
			name: "missing hover target",
			doc:  "scenarios:\n  - name: x\n    steps:\n      - act: hover_click\n        locator: dropdowns.drop_down\n",
			want: "target",
		},
		{
			name: "empty css",
			doc:  "scenarios:\n  - name: x\n    steps:\n      - act: click\n        locator: \"css=\"\n",
			want: "empty selector",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), pageobjects.Default())
			require.Error(t, err)
			assert.Equal(t, errs.Configuration, errs.CodeOf(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	scs, err := Parse(nil, pageobjects.Default())
	require.NoError(t, err)
	assert.Empty(t, scs)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), pageobjects.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
