// Package scenarios holds the sanity catalog for the demo page and loads
// extra scenarios from YAML files.
package scenarios

import (
	"sort"
	"strings"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/errs"
	"ui_automation/infrastructure/pageobjects"
)

// PageTitle is the document title of the demo page.
const PageTitle = "Web Testing Page"

// HoverTimeout bounds the hover-and-click attempt on the dropdown before
// the JavaScript click is used instead.
const HoverTimeout = time.Second

var page = pageobjects.DemoPage

// Sanity returns the sanity catalog in execution order. Each call returns
// fresh values.
func Sanity() []entities.Scenario {
	g, in, dd, cl, sl := page.General, page.TextInputs, page.Dropdowns, page.Clicks, page.Slider
	fr, rb, cb, dr := page.IFrames, page.RadioButtons, page.Checkboxes, page.DragDrops

	return []entities.Scenario{
		{
			Name:        "open_page",
			Description: "title, page body and main heading are present",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertTitle(PageTitle),
				entities.AssertVisible(g.FullPage),
				entities.AssertText(g.DemoPageH1, "Demo Page"),
			},
		},
		{
			Name:        "text_fields",
			Description: "typed text is read back from each text field",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.TypeText(in.TextInputField, "Hello all!"),
				entities.TypeText(in.Textarea, "I'm Kfir,\n Kfir Kanizo"),
				entities.TypeText(in.PrefilledTextField, "And I'm typing text."),
				entities.AssertText(in.TextInputField, "Hello all!"),
				entities.AssertText(in.Textarea, "I'm Kfir,\n Kfir Kanizo"),
				entities.AssertText(in.PrefilledTextField, "And I'm typing text."),
			},
		},
		{
			Name:        "drop_down",
			Description: "hover menu selection updates the heading",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertText(g.DynamicDropdownH3, "Automation Practice"),
				entities.WithFallback(
					entities.HoverAndClick(dd.DropDown, dd.OptionTwo),
					entities.JSClick(dd.OptionTwo),
					HoverTimeout,
				),
				entities.AssertText(g.DynamicDropdownH3, "Link Two Selected"),
			},
		},
		{
			Name:        "click",
			Description: "button click recolors the paragraph",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertText(cl.ParagraphWithText, "This Text is Green"),
				entities.Click(cl.Button),
				entities.AssertText(cl.ParagraphWithText, "This Text is Purple"),
			},
		},
		{
			Name:        "svg_visibility",
			Description: "inline SVG is rendered",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertVisible(g.HTMLSVGWithRect),
			},
		},
		{
			Name:        "slider",
			Description: "arrow keys move the slider and the progress bar follows",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertVisible(sl.Progress(50)),
				entities.PressKey(sl.MySlider, entities.KeyArrowDown, 5),
				entities.AssertVisible(sl.Progress(0)),
				entities.PressKey(sl.MySlider, entities.KeyArrowUp, 10),
				entities.AssertVisible(sl.Progress(100)),
			},
		},
		{
			Name:        "select_drop_down",
			Description: "select option updates the meter",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertVisible(dd.QuarterMeter),
				entities.SelectOption(dd.SelectDropDown, "Set to 75%"),
				entities.AssertVisible(dd.ThreeQuartersMeter),
			},
		},
		{
			Name:        "iframe_img",
			Description: "image is visible only inside its frame",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertNotVisible(fr.Image),
				entities.SwitchToFrame(fr.ImgIFrame),
				entities.AssertVisible(fr.Image),
				entities.SwitchToDefault(),
			},
		},
		{
			Name:        "iframe_text",
			Description: "text is visible only inside its frame",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertTextNotVisible("iFrame Text"),
				entities.SwitchToFrame(fr.TxtIFrame),
				entities.AssertTextVisible("iFrame Text"),
				entities.SwitchToDefault(),
			},
		},
		{
			Name:        "radio_button",
			Description: "clicking a radio button selects it",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertNotSelected(rb.RadioTwo),
				entities.Click(rb.RadioTwo),
				entities.AssertSelected(rb.RadioTwo),
			},
		},
		{
			Name:        "check_box",
			Description: "checking the first box reveals the logo",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertNotVisible(cb.Logo),
				entities.AssertNotSelected(cb.CheckBoxOne),
				entities.Click(cb.CheckBoxOne),
				entities.AssertSelected(cb.CheckBoxOne),
				entities.AssertVisible(cb.Logo),
			},
		},
		{
			Name:        "multiple_checkbox",
			Description: "one call checks every visible box of a family",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertNotSelected(cb.CheckBoxTwo),
				entities.AssertNotSelected(cb.CheckBoxThree),
				entities.AssertNotSelected(cb.CheckBoxFour),
				entities.ClickVisible(cb.BulkChecking),
				entities.AssertSelected(cb.CheckBoxTwo),
				entities.AssertSelected(cb.CheckBoxThree),
				entities.AssertSelected(cb.CheckBoxFour),
			},
		},
		{
			Name:        "iframe_checkbox",
			Description: "checkbox inside a frame can be checked",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertNotVisible(cb.CheckBoxSix),
				entities.SwitchToFrame(fr.CheckboxIFrame),
				entities.AssertVisible(cb.CheckBoxSix),
				entities.AssertNotSelected(cb.CheckBoxSix),
				entities.Click(cb.CheckBoxSix),
				entities.AssertSelected(cb.CheckBoxSix),
				entities.SwitchToDefault(),
			},
		},
		{
			Name:        "drag_and_drop",
			Description: "logo can be dragged onto the drop target",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.Click(cb.CheckBoxOne),
				entities.AssertNotVisible(dr.ElementInPlace),
				entities.DragAndDrop(cb.Logo, dr.Drop),
				entities.AssertVisible(dr.ElementInPlace),
			},
		},
		{
			Name:        "link_text",
			Description: "links are present and clickable by text",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertLinkText("seleniumbase.com"),
				entities.AssertLinkText("SeleniumBase on GitHub"),
				entities.AssertLinkText("seleniumbase.io"),
				entities.ClickLink("SeleniumBase Demo Page"),
			},
		},
		{
			Name:        "exact_text",
			Description: "main heading text matches exactly",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.AssertExactText(g.DemoPageH1, "Demo Page"),
			},
		},
		{
			Name:        "highlight_element",
			Description: "section heading can be highlighted",
			Steps: []entities.Step{
				entities.Navigate(""),
				entities.Highlight(g.SectionHeading),
			},
		},
	}
}

// Names returns the catalog scenario names in execution order.
func Names() []string {
	all := Sanity()
	names := make([]string, len(all))
	for i, sc := range all {
		names[i] = sc.Name
	}
	return names
}

// ByName picks scenarios from all by name, accepting an optional "test_"
// prefix. No names selects every scenario.
func ByName(all []entities.Scenario, names ...string) ([]entities.Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}

	index := make(map[string]entities.Scenario, len(all))
	for _, sc := range all {
		index[sc.Name] = sc
	}

	selected := make([]entities.Scenario, 0, len(names))
	var unknown []string
	for _, name := range names {
		sc, ok := index[strings.TrimPrefix(name, "test_")]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, sc)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errs.Configurationf("unknown scenario(s): %s", strings.Join(unknown, ", "))
	}
	return selected, nil
}

// Merge appends extra to base, rejecting duplicate names.
func Merge(base []entities.Scenario, extra ...entities.Scenario) ([]entities.Scenario, error) {
	seen := make(map[string]bool, len(base)+len(extra))
	out := make([]entities.Scenario, 0, len(base)+len(extra))
	for _, sc := range append(append([]entities.Scenario{}, base...), extra...) {
		if seen[sc.Name] {
			return nil, errs.Configurationf("duplicate scenario %q", sc.Name)
		}
		seen[sc.Name] = true
		out = append(out, sc)
	}
	return out, nil
}
