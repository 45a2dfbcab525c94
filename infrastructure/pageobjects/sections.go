// Package pageobjects maps semantic element names on the demo page to
// locators, grouped by page section.
package pageobjects

import (
	"fmt"

	"ui_automation/domain/entities"
)

// Section is a named group of locators.
type Section interface {
	SectionName() string
	Entries() []entities.NamedLocator
}

func entry(section, name string, loc entities.Locator) entities.NamedLocator {
	return entities.NamedLocator{Section: section, Name: name, Locator: loc}
}

type General struct {
	FullPage          entities.Locator
	DemoPageH1        entities.Locator
	DynamicDropdownH3 entities.Locator
	HTMLSVGWithRect   entities.Locator
	SectionHeading    entities.Locator
}

func (General) SectionName() string { return "general" }

func (g General) Entries() []entities.NamedLocator {
	s := g.SectionName()
	return []entities.NamedLocator{
		entry(s, "full_page", g.FullPage),
		entry(s, "demo_page_h1", g.DemoPageH1),
		entry(s, "dynamic_dropdown_h3", g.DynamicDropdownH3),
		entry(s, "html_svg_with_rect", g.HTMLSVGWithRect),
		entry(s, "section_heading", g.SectionHeading),
	}
}

type TextInputs struct {
	TextInputField     entities.Locator
	Textarea           entities.Locator
	PrefilledTextField entities.Locator
}

func (TextInputs) SectionName() string { return "txt_inputs" }

func (t TextInputs) Entries() []entities.NamedLocator {
	s := t.SectionName()
	return []entities.NamedLocator{
		entry(s, "text_input_field", t.TextInputField),
		entry(s, "textarea", t.Textarea),
		entry(s, "prefilled_text_field", t.PrefilledTextField),
	}
}

type Dropdowns struct {
	DropDown           entities.Locator
	OptionOne          entities.Locator
	OptionTwo          entities.Locator
	OptionThree        entities.Locator
	SelectDropDown     entities.Locator
	QuarterMeter       entities.Locator
	ThreeQuartersMeter entities.Locator
}

func (Dropdowns) SectionName() string { return "dropdowns" }

func (d Dropdowns) Entries() []entities.NamedLocator {
	s := d.SectionName()
	return []entities.NamedLocator{
		entry(s, "drop_down", d.DropDown),
		entry(s, "opt_one", d.OptionOne),
		entry(s, "opt_two", d.OptionTwo),
		entry(s, "opt_three", d.OptionThree),
		entry(s, "select_drop_down", d.SelectDropDown),
		entry(s, "quarter_meter", d.QuarterMeter),
		entry(s, "three_quarters_meter", d.ThreeQuartersMeter),
	}
}

type Clicks struct {
	Button            entities.Locator
	ParagraphWithText entities.Locator
}

func (Clicks) SectionName() string { return "clicks" }

func (c Clicks) Entries() []entities.NamedLocator {
	s := c.SectionName()
	return []entities.NamedLocator{
		entry(s, "button", c.Button),
		entry(s, "paragraph_with_text", c.ParagraphWithText),
	}
}

type Slider struct {
	MySlider    entities.Locator
	ProgressBar entities.Locator
}

func (Slider) SectionName() string { return "slider" }

// Progress returns the locator of the progress bar showing value.
func (Slider) Progress(value int) entities.Locator {
	return entities.Locator(fmt.Sprintf(`progress[value="%d"]`, value))
}

func (sl Slider) Entries() []entities.NamedLocator {
	s := sl.SectionName()
	return []entities.NamedLocator{
		entry(s, "my_slider", sl.MySlider),
		entry(s, "progress_bar", sl.ProgressBar),
	}
}

type IFrames struct {
	ImgIFrame      entities.Locator
	TxtIFrame      entities.Locator
	CheckboxIFrame entities.Locator
	Image          entities.Locator
}

func (IFrames) SectionName() string { return "iframes" }

func (f IFrames) Entries() []entities.NamedLocator {
	s := f.SectionName()
	return []entities.NamedLocator{
		entry(s, "img_iframe", f.ImgIFrame),
		entry(s, "txt_iframe", f.TxtIFrame),
		entry(s, "checkbox_iframe", f.CheckboxIFrame),
		entry(s, "image", f.Image),
	}
}

type RadioButtons struct {
	RadioOne entities.Locator
	RadioTwo entities.Locator
}

func (RadioButtons) SectionName() string { return "radio_buttons" }

func (r RadioButtons) Entries() []entities.NamedLocator {
	s := r.SectionName()
	return []entities.NamedLocator{
		entry(s, "rb_one", r.RadioOne),
		entry(s, "rb_two", r.RadioTwo),
	}
}

type Checkboxes struct {
	CheckBoxOne   entities.Locator
	CheckBoxTwo   entities.Locator
	CheckBoxThree entities.Locator
	CheckBoxFour  entities.Locator
	CheckBoxSix   entities.Locator
	BulkChecking  entities.Locator
	Logo          entities.Locator
}

func (Checkboxes) SectionName() string { return "checkboxes" }

func (c Checkboxes) Entries() []entities.NamedLocator {
	s := c.SectionName()
	return []entities.NamedLocator{
		entry(s, "check_box_one", c.CheckBoxOne),
		entry(s, "check_box_two", c.CheckBoxTwo),
		entry(s, "check_box_three", c.CheckBoxThree),
		entry(s, "check_box_four", c.CheckBoxFour),
		entry(s, "check_box_six", c.CheckBoxSix),
		entry(s, "bulk_checking", c.BulkChecking),
		entry(s, "logo", c.Logo),
	}
}

type DragDrops struct {
	Drop           entities.Locator
	ElementInPlace entities.Locator
}

func (DragDrops) SectionName() string { return "drag_drops" }

func (d DragDrops) Entries() []entities.NamedLocator {
	s := d.SectionName()
	return []entities.NamedLocator{
		entry(s, "drop", d.Drop),
		entry(s, "element_in_place", d.ElementInPlace),
	}
}

// Page holds every section of the demo page.
type Page struct {
	General      General
	TextInputs   TextInputs
	Dropdowns    Dropdowns
	Clicks       Clicks
	Slider       Slider
	IFrames      IFrames
	RadioButtons RadioButtons
	Checkboxes   Checkboxes
	DragDrops    DragDrops
}

// Sections returns the page sections in display order.
func (p Page) Sections() []Section {
	return []Section{
		p.General, p.TextInputs, p.Dropdowns, p.Clicks, p.Slider,
		p.IFrames, p.RadioButtons, p.Checkboxes, p.DragDrops,
	}
}

// DemoPage is the locator set for the "Web Testing Page" demo page.
var DemoPage = Page{
	General: General{
		FullPage:          "html",
		DemoPageH1:        "h1",
		DynamicDropdownH3: "h3",
		HTMLSVGWithRect:   `svg[name="svgName"]`,
		SectionHeading:    "h2",
	},
	TextInputs: TextInputs{
		TextInputField:     "#myTextInput",
		Textarea:           "textarea.area1",
		PrefilledTextField: `[name="preText2"]`,
	},
	Dropdowns: Dropdowns{
		DropDown:           "div#myDropdown",
		OptionOne:          "#dropOption1",
		OptionTwo:          "#dropOption2",
		OptionThree:        "#dropOption3",
		SelectDropDown:     "select#mySelect",
		QuarterMeter:       `meter[value="0.25"]`,
		ThreeQuartersMeter: `meter[value="0.75"]`,
	},
	Clicks: Clicks{
		Button:            "#myButton",
		ParagraphWithText: "#pText",
	},
	Slider: Slider{
		MySlider:    "input#myslider",
		ProgressBar: "progress#progressBar",
	},
	IFrames: IFrames{
		ImgIFrame:      "iframe#myFrame1",
		TxtIFrame:      "iframe#myFrame2",
		CheckboxIFrame: "iframe#myFrame3",
		Image:          "img",
	},
	RadioButtons: RadioButtons{
		RadioOne: "#radioButton1",
		RadioTwo: "#radioButton2",
	},
	Checkboxes: Checkboxes{
		CheckBoxOne:   "#checkBox1",
		CheckBoxTwo:   "#checkBox2",
		CheckBoxThree: "#checkBox3",
		CheckBoxFour:  "#checkBox4",
		CheckBoxSix:   "#checkBox6",
		BulkChecking:  "input.checkBoxClassB",
		Logo:          "img#logo",
	},
	DragDrops: DragDrops{
		Drop:           "div#drop2",
		ElementInPlace: "div#drop2 img#logo",
	},
}
