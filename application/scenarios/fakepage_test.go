package scenarios

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// fakePage models the demo page behaviour the catalog relies on.
type fakePage struct {
	mu sync.Mutex

	hoverFails bool
	frame      string

	values   map[entities.Locator]string
	selected map[entities.Locator]bool
	h3       string
	pText    string
	slider   int
	meter    string
	logoIn   string
	visited  []string
}

func newFakePage(hoverFails bool) *fakePage {
	return &fakePage{
		hoverFails: hoverFails,
		values: map[entities.Locator]string{
			page.TextInputs.TextInputField:     "",
			page.TextInputs.Textarea:           "",
			page.TextInputs.PrefilledTextField: "Text...",
		},
		selected: map[entities.Locator]bool{},
		h3:       "Automation Practice",
		pText:    "This Text is Green",
		slider:   50,
		meter:    "0.25",
	}
}

var frames = map[entities.Locator]string{
	page.IFrames.ImgIFrame:      "img",
	page.IFrames.TxtIFrame:      "text",
	page.IFrames.CheckboxIFrame: "checkbox",
}

var linkTexts = []string{"seleniumbase.com", "SeleniumBase on GitHub", "seleniumbase.io", "SeleniumBase Demo Page"}

func noElement(loc entities.Locator) error {
	return fmt.Errorf("no element matches %s", loc)
}

func (p *fakePage) visible(loc entities.Locator) (bool, bool) {
	switch p.frame {
	case "img":
		return loc == page.IFrames.Image, loc == page.IFrames.Image
	case "text":
		return false, false
	case "checkbox":
		return loc == page.Checkboxes.CheckBoxSix, loc == page.Checkboxes.CheckBoxSix
	}

	switch loc {
	case page.General.FullPage, page.General.DemoPageH1, page.General.DynamicDropdownH3,
		page.General.HTMLSVGWithRect, page.General.SectionHeading, page.Clicks.Button,
		page.Clicks.ParagraphWithText, page.Slider.MySlider, page.Slider.ProgressBar,
		page.Dropdowns.DropDown, page.Dropdowns.SelectDropDown:
		return true, true
	case page.Slider.Progress(p.slider):
		return true, true
	case entities.Locator(fmt.Sprintf(`meter[value="%s"]`, p.meter)):
		return true, true
	case page.IFrames.Image, page.Checkboxes.Logo:
		return p.logoIn != "", p.logoIn != ""
	case page.DragDrops.ElementInPlace:
		return p.logoIn == "drop2", p.logoIn == "drop2"
	case page.DragDrops.Drop:
		return true, true
	}
	if _, ok := p.values[loc]; ok {
		return true, true
	}
	if _, ok := frames[loc]; ok {
		return true, true
	}
	for _, box := range []entities.Locator{
		page.RadioButtons.RadioOne, page.RadioButtons.RadioTwo, page.Checkboxes.CheckBoxOne,
		page.Checkboxes.CheckBoxTwo, page.Checkboxes.CheckBoxThree, page.Checkboxes.CheckBoxFour,
	} {
		if loc == box {
			return true, true
		}
	}
	return false, false
}

func (p *fakePage) need(loc entities.Locator) error {
	if visible, _ := p.visible(loc); !visible {
		return noElement(loc)
	}
	return nil
}

func (p *fakePage) Navigate(_ context.Context, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visited = append(p.visited, url)
	return nil
}

func (p *fakePage) Title(context.Context) (string, error) { return PageTitle, nil }

func (p *fakePage) Type(_ context.Context, loc entities.Locator, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.values[loc]; !ok || p.frame != "" {
		return noElement(loc)
	}
	p.values[loc] = text
	return nil
}

func (p *fakePage) click(loc entities.Locator) error {
	if err := p.need(loc); err != nil {
		return err
	}
	switch loc {
	case page.Clicks.Button:
		p.pText = "This Text is Purple"
	case page.RadioButtons.RadioOne, page.RadioButtons.RadioTwo:
		p.selected[page.RadioButtons.RadioOne] = false
		p.selected[page.RadioButtons.RadioTwo] = false
		p.selected[loc] = true
	case page.Checkboxes.CheckBoxOne:
		p.selected[loc] = !p.selected[loc]
		if p.selected[loc] {
			p.logoIn = "drop1"
		} else {
			p.logoIn = ""
		}
	default:
		p.selected[loc] = !p.selected[loc]
	}
	return nil
}

func (p *fakePage) Click(_ context.Context, loc entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.click(loc)
}

func (p *fakePage) JSClick(_ context.Context, loc entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loc == page.Dropdowns.OptionTwo {
		p.h3 = "Link Two Selected"
		return nil
	}
	return p.click(loc)
}

func (p *fakePage) HoverAndClick(_ context.Context, hover, target entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.hoverFails {
		return fmt.Errorf("element %s not visible after hover", target)
	}
	if hover != page.Dropdowns.DropDown || target != page.Dropdowns.OptionTwo {
		return noElement(target)
	}
	p.h3 = "Link Two Selected"
	return nil
}

func (p *fakePage) SelectOptionByText(_ context.Context, loc entities.Locator, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loc != page.Dropdowns.SelectDropDown {
		return noElement(loc)
	}
	options := map[string]string{"Set to 25%": "0.25", "Set to 50%": "0.5", "Set to 75%": "0.75", "Set to 100%": "1"}
	v, ok := options[text]
	if !ok {
		return fmt.Errorf("no option %q", text)
	}
	p.meter = v
	return nil
}

func (p *fakePage) PressKey(_ context.Context, loc entities.Locator, key entities.Key) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loc != page.Slider.MySlider {
		return noElement(loc)
	}
	switch key {
	case entities.KeyArrowDown, entities.KeyArrowLeft:
		p.slider = max(0, p.slider-10)
	case entities.KeyArrowUp, entities.KeyArrowRight:
		p.slider = min(100, p.slider+10)
	}
	return nil
}

func (p *fakePage) DragAndDrop(_ context.Context, source, target entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.need(source); err != nil {
		return err
	}
	if source == page.Checkboxes.Logo && target == page.DragDrops.Drop {
		p.logoIn = "drop2"
	}
	return nil
}

func (p *fakePage) ClickVisibleElements(_ context.Context, loc entities.Locator) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loc != page.Checkboxes.BulkChecking || p.frame != "" {
		return 0, nil
	}
	for _, box := range []entities.Locator{page.Checkboxes.CheckBoxTwo, page.Checkboxes.CheckBoxThree, page.Checkboxes.CheckBoxFour} {
		p.selected[box] = !p.selected[box]
	}
	return 3, nil
}

func (p *fakePage) ClickLinkText(_ context.Context, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, l := range linkTexts {
		if l == text {
			p.visited = append(p.visited, "link:"+text)
			return nil
		}
	}
	return fmt.Errorf("no link %q", text)
}

func (p *fakePage) Highlight(_ context.Context, loc entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.need(loc)
}

func (p *fakePage) SwitchToFrame(_ context.Context, loc entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	f, ok := frames[loc]
	if !ok || p.frame != "" {
		return noElement(loc)
	}
	p.frame = f
	return nil
}

func (p *fakePage) SwitchToDefaultContent(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frame = ""
	return nil
}

func (p *fakePage) WaitVisible(ctx context.Context, loc entities.Locator) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if visible, _ := p.visible(loc); !visible {
		return fmt.Errorf("waiting for %s: %w", loc, context.DeadlineExceeded)
	}
	return nil
}

func (p *fakePage) IsElementVisible(_ context.Context, loc entities.Locator) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	visible, _ := p.visible(loc)
	return visible, nil
}

func (p *fakePage) IsSelected(_ context.Context, loc entities.Locator) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, present := p.visible(loc); !present {
		return false, noElement(loc)
	}
	return p.selected[loc], nil
}

func (p *fakePage) IsTextVisible(_ context.Context, text string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frame == "text" {
		return strings.Contains("iFrame Text", text), nil
	}
	if p.frame != "" {
		return false, nil
	}
	return strings.Contains("Demo Page Automation Practice "+p.h3+" "+p.pText, text), nil
}

func (p *fakePage) IsLinkTextVisible(_ context.Context, text string) (bool, error) {
	for _, l := range linkTexts {
		if l == text {
			return true, nil
		}
	}
	return false, nil
}

func (p *fakePage) Text(_ context.Context, loc entities.Locator) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[loc]; ok && p.frame == "" {
		return v, nil
	}
	switch loc {
	case page.General.DemoPageH1:
		return "Demo Page", nil
	case page.General.DynamicDropdownH3:
		return p.h3, nil
	case page.Clicks.ParagraphWithText:
		return p.pText, nil
	}
	return "", noElement(loc)
}

func (p *fakePage) Screenshot(context.Context) ([]byte, error) { return []byte("png"), nil }

func (p *fakePage) Close() error { return nil }

type fakeFactory struct {
	mu         sync.Mutex
	hoverFails bool
	pages      []*fakePage
}

func (f *fakeFactory) Name() string { return "fake" }

func (f *fakeFactory) NewDriver(context.Context) (interfaces.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := newFakePage(f.hoverFails)
	f.pages = append(f.pages, p)
	return p, nil
}

func (f *fakeFactory) Close() error { return nil }
