package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ui_automation/domain/entities"
)

// The scripts below are function declarations evaluated with the element
// bound to this. Drivers without a this-binding call wrap them with .call.

// textScript returns a form control's value, rendered text otherwise.
const textScript = `function() {
	const tag = this.tagName;
	if (tag === 'INPUT' || tag === 'TEXTAREA' || tag === 'SELECT') {
		return this.value;
	}
	return this.innerText;
}`

const jsClickScript = `function() {
	this.click();
	return true;
}`

// visibleScript mirrors the WebDriver notion of a displayed element.
const visibleScript = `function() {
	if (!this.isConnected) return false;
	const style = this.ownerDocument.defaultView.getComputedStyle(this);
	if (style.visibility === 'hidden' || style.display === 'none') return false;
	return this.getClientRects().length > 0;
}`

const selectedScript = `function() {
	return !!(this.checked || this.selected);
}`

const highlightScript = `function() {
	this.scrollIntoView({block: 'center'});
	const previous = this.style.outline;
	this.style.outline = '3px solid #ff0080';
	setTimeout(() => { this.style.outline = previous; }, 1000);
	return true;
}`

// selectByTextScript picks the option whose visible text equals the
// argument and fires the events a user selection would.
const selectByTextScript = `function(text) {
	for (const option of this.options) {
		if (option.text.trim() === text) {
			this.value = option.value;
			this.dispatchEvent(new Event('input', {bubbles: true}));
			this.dispatchEvent(new Event('change', {bubbles: true}));
			return true;
		}
	}
	return false;
}`

// dragDropScript simulates an HTML5 drag of this onto the element matching
// the target selector in the same document.
const dragDropScript = `function(targetSelector) {
	const target = this.ownerDocument.querySelector(targetSelector);
	if (!target) return false;
	const data = new DataTransfer();
	const fire = (el, type) => el.dispatchEvent(new DragEvent(type, {bubbles: true, cancelable: true, dataTransfer: data}));
	fire(this, 'dragstart');
	fire(target, 'dragenter');
	fire(target, 'dragover');
	fire(target, 'drop');
	fire(this, 'dragend');
	return true;
}`

// textVisibleScript is evaluated on the document element of the current
// frame.
const textVisibleScript = `function(text) {
	const body = this.ownerDocument.body;
	return !!body && body.innerText.includes(text);
}`

const linkTextVisibleScript = `function(text) {
	const links = this.ownerDocument.querySelectorAll('a');
	for (const a of links) {
		if (a.innerText.trim() === text && a.getClientRects().length > 0) {
			return true;
		}
	}
	return false;
}`

// rootLocator is evaluated against for document-wide scripts.
const rootLocator = entities.Locator("html")

const defaultCallTimeout = 10 * time.Second

// remaining returns the time left before ctx expires, or fallback without a
// deadline.
func remaining(ctx context.Context, fallback time.Duration) time.Duration {
	dl, ok := ctx.Deadline()
	if !ok {
		return fallback
	}
	left := time.Until(dl)
	if left < time.Millisecond {
		return time.Millisecond
	}
	return left
}

// xpathLiteral quotes s for use in an XPath expression.
func xpathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	for i, part := range parts {
		parts[i] = `"` + part + `"`
	}
	return "concat(" + strings.Join(parts, `, '"', `) + ")"
}

func scriptFailed(name string, loc entities.Locator) error {
	return fmt.Errorf("%s returned false for %s", name, loc)
}
