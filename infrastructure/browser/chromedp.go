package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"github.com/sirupsen/logrus"
)

// ChromedpFactory owns one allocator and browser; each session is a tab.
type ChromedpFactory struct {
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	logger        *logrus.Logger
}

// NewChromedpFactory - starts chrome through an exec or remote allocator
func NewChromedpFactory(opts Options, logger *logrus.Logger) (*ChromedpFactory, error) {
	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	if opts.RemoteURL != "" {
		logger.Infof("Connecting to remote browser at %s", opts.RemoteURL)
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(context.Background(), opts.RemoteURL)
	} else {
		execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.WindowSize(opts.ViewportWidth, opts.ViewportHeight),
		)
		if opts.ChromeBinary != "" {
			execOpts = append(execOpts, chromedp.ExecPath(opts.ChromeBinary))
		}
		allocCtx, allocCancel = chromedp.NewExecAllocator(context.Background(), execOpts...)
	}

	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(logger.Debugf))
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &ChromedpFactory{
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		logger:        logger,
	}, nil
}

func (f *ChromedpFactory) Name() string { return Chromedp }

// NewDriver - opens a new tab in the shared browser
func (f *ChromedpFactory) NewDriver(ctx context.Context) (interfaces.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tabCtx, cancel := chromedp.NewContext(f.browserCtx)
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	return &chromedpDriver{tabCtx: tabCtx, cancel: cancel, logger: f.logger}, nil
}

// Close - shuts down the browser
func (f *ChromedpFactory) Close() error {
	f.browserCancel()
	f.allocCancel()
	return nil
}

type chromedpDriver struct {
	tabCtx context.Context
	cancel context.CancelFunc
	logger *logrus.Logger

	mu    sync.Mutex
	frame *cdp.Node
}

var chromedpKeys = map[entities.Key]string{
	entities.KeyArrowUp:    kb.ArrowUp,
	entities.KeyArrowDown:  kb.ArrowDown,
	entities.KeyArrowLeft:  kb.ArrowLeft,
	entities.KeyArrowRight: kb.ArrowRight,
}

// run executes actions in the tab, bounded by ctx.
func (d *chromedpDriver) run(ctx context.Context, actions ...chromedp.Action) error {
	cctx, cancel := context.WithTimeout(d.tabCtx, remaining(ctx, defaultCallTimeout))
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(cctx, actions...)
}

// scoped returns query options limited to the current frame.
func (d *chromedpDriver) scoped(opts ...chromedp.QueryOption) []chromedp.QueryOption {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.frame != nil {
		opts = append(opts, chromedp.FromNode(d.frame))
	}
	return opts
}

func (d *chromedpDriver) node(ctx context.Context, loc entities.Locator, opts ...chromedp.QueryOption) (*cdp.Node, error) {
	var nodes []*cdp.Node
	opts = append([]chromedp.QueryOption{chromedp.ByQuery}, opts...)
	if err := d.run(ctx, chromedp.Nodes(string(loc), &nodes, d.scoped(opts...)...)); err != nil {
		return nil, fmt.Errorf("element %s not found: %w", loc, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("element %s not found", loc)
	}
	return nodes[0], nil
}

// callOn evaluates a function declaration with this bound to node and
// decodes its return value into out.
func (d *chromedpDriver) callOn(ctx context.Context, node *cdp.Node, script string, arg any, out any) error {
	fn := script
	if arg != nil {
		encoded, err := json.Marshal(arg)
		if err != nil {
			return err
		}
		fn = fmt.Sprintf("function() { return (%s).call(this, %s); }", script, encoded)
	}

	return d.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := dom.ResolveNode().WithBackendNodeID(node.BackendNodeID).Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve node: %w", err)
		}
		res, exc, err := runtime.CallFunctionOn(fn).
			WithObjectID(obj.ObjectID).
			WithReturnByValue(true).
			Do(ctx)
		if err != nil {
			return err
		}
		if exc != nil {
			return fmt.Errorf("script error: %s", exc.Text)
		}
		if out == nil || res == nil || len(res.Value) == 0 {
			return nil
		}
		return json.Unmarshal([]byte(res.Value), out)
	}))
}

func (d *chromedpDriver) boolOn(ctx context.Context, loc entities.Locator, script string, arg any) (bool, error) {
	n, err := d.node(ctx, loc)
	if err != nil {
		return false, err
	}
	var ok bool
	err = d.callOn(ctx, n, script, arg, &ok)
	return ok, err
}

func (d *chromedpDriver) Navigate(ctx context.Context, url string) error {
	if err := d.run(ctx, chromedp.Navigate(url)); err != nil {
		return err
	}
	d.mu.Lock()
	d.frame = nil
	d.mu.Unlock()
	return nil
}

func (d *chromedpDriver) Title(ctx context.Context) (string, error) {
	var title string
	err := d.run(ctx, chromedp.Title(&title))
	return title, err
}

// Type - clears the field and sends text as key events
func (d *chromedpDriver) Type(ctx context.Context, loc entities.Locator, text string) error {
	sel := string(loc)
	opts := d.scoped(chromedp.ByQuery, chromedp.NodeVisible)
	return d.run(ctx,
		chromedp.SetValue(sel, "", opts...),
		chromedp.SendKeys(sel, text, opts...),
	)
}

func (d *chromedpDriver) Click(ctx context.Context, loc entities.Locator) error {
	return d.run(ctx, chromedp.Click(string(loc), d.scoped(chromedp.ByQuery)...))
}

func (d *chromedpDriver) JSClick(ctx context.Context, loc entities.Locator) error {
	n, err := d.node(ctx, loc)
	if err != nil {
		return err
	}
	return d.callOn(ctx, n, jsClickScript, nil, nil)
}

// HoverAndClick - moves the mouse over hover, then clicks target
func (d *chromedpDriver) HoverAndClick(ctx context.Context, hover, target entities.Locator) error {
	n, err := d.node(ctx, hover, chromedp.NodeVisible)
	if err != nil {
		return err
	}

	var pos struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	center := `function() {
		this.scrollIntoView({block: 'center'});
		const rect = this.getBoundingClientRect();
		return {x: rect.x + rect.width / 2, y: rect.y + rect.height / 2};
	}`
	if err := d.callOn(ctx, n, center, nil, &pos); err != nil {
		return fmt.Errorf("failed to locate %s: %w", hover, err)
	}
	if err := d.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return input.DispatchMouseEvent(input.MouseMoved, pos.X, pos.Y).Do(ctx)
	})); err != nil {
		return fmt.Errorf("failed to hover %s: %w", hover, err)
	}
	return d.Click(ctx, target)
}

func (d *chromedpDriver) SelectOptionByText(ctx context.Context, loc entities.Locator, text string) error {
	ok, err := d.boolOn(ctx, loc, selectByTextScript, text)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("option %q not found in %s", text, loc)
	}
	return nil
}

func (d *chromedpDriver) PressKey(ctx context.Context, loc entities.Locator, key entities.Key) error {
	k, ok := chromedpKeys[key]
	if !ok {
		return fmt.Errorf("unsupported key %q", key)
	}
	return d.run(ctx, chromedp.SendKeys(string(loc), k, d.scoped(chromedp.ByQuery, chromedp.NodeVisible)...))
}

func (d *chromedpDriver) DragAndDrop(ctx context.Context, source, target entities.Locator) error {
	if _, err := d.node(ctx, target, chromedp.NodeVisible); err != nil {
		return err
	}
	ok, err := d.boolOn(ctx, source, dragDropScript, string(target))
	if err != nil {
		return err
	}
	if !ok {
		return scriptFailed("drag and drop", source)
	}
	return nil
}

func (d *chromedpDriver) ClickVisibleElements(ctx context.Context, loc entities.Locator) (int, error) {
	var nodes []*cdp.Node
	if err := d.run(ctx, chromedp.Nodes(string(loc), &nodes, d.scoped(chromedp.ByQueryAll, chromedp.AtLeast(0))...)); err != nil {
		return 0, err
	}

	clicked := 0
	for _, n := range nodes {
		var visible bool
		if err := d.callOn(ctx, n, visibleScript, nil, &visible); err != nil || !visible {
			continue
		}
		if err := d.run(ctx, chromedp.MouseClickNode(n)); err != nil {
			return clicked, err
		}
		clicked++
	}
	return clicked, nil
}

func (d *chromedpDriver) ClickLinkText(ctx context.Context, text string) error {
	xpath := fmt.Sprintf("//a[normalize-space(.)=%s]", xpathLiteral(text))
	return d.run(ctx, chromedp.Click(xpath, d.scoped(chromedp.BySearch)...))
}

func (d *chromedpDriver) Highlight(ctx context.Context, loc entities.Locator) error {
	n, err := d.node(ctx, loc, chromedp.NodeVisible)
	if err != nil {
		return err
	}
	return d.callOn(ctx, n, highlightScript, nil, nil)
}

// SwitchToFrame - limits later queries to the iframe's document
func (d *chromedpDriver) SwitchToFrame(ctx context.Context, loc entities.Locator) error {
	n, err := d.node(ctx, loc)
	if err != nil {
		return err
	}
	if n.NodeName != "IFRAME" && n.NodeName != "FRAME" {
		return fmt.Errorf("%s is not a frame", loc)
	}
	d.mu.Lock()
	d.frame = n
	d.mu.Unlock()
	return nil
}

func (d *chromedpDriver) SwitchToDefaultContent(ctx context.Context) error {
	d.mu.Lock()
	d.frame = nil
	d.mu.Unlock()
	return nil
}

func (d *chromedpDriver) WaitVisible(ctx context.Context, loc entities.Locator) error {
	return d.run(ctx, chromedp.WaitVisible(string(loc), d.scoped(chromedp.ByQuery)...))
}

func (d *chromedpDriver) IsElementVisible(ctx context.Context, loc entities.Locator) (bool, error) {
	var nodes []*cdp.Node
	if err := d.run(ctx, chromedp.Nodes(string(loc), &nodes, d.scoped(chromedp.ByQueryAll, chromedp.AtLeast(0))...)); err != nil {
		return false, err
	}
	if len(nodes) == 0 {
		return false, nil
	}
	var visible bool
	err := d.callOn(ctx, nodes[0], visibleScript, nil, &visible)
	return visible, err
}

func (d *chromedpDriver) IsSelected(ctx context.Context, loc entities.Locator) (bool, error) {
	return d.boolOn(ctx, loc, selectedScript, nil)
}

func (d *chromedpDriver) IsTextVisible(ctx context.Context, text string) (bool, error) {
	return d.boolOn(ctx, rootLocator, textVisibleScript, text)
}

func (d *chromedpDriver) IsLinkTextVisible(ctx context.Context, text string) (bool, error) {
	return d.boolOn(ctx, rootLocator, linkTextVisibleScript, text)
}

func (d *chromedpDriver) Text(ctx context.Context, loc entities.Locator) (string, error) {
	n, err := d.node(ctx, loc)
	if err != nil {
		return "", err
	}
	var text string
	err = d.callOn(ctx, n, textScript, nil, &text)
	return text, err
}

func (d *chromedpDriver) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	err := d.run(ctx, chromedp.FullScreenshot(&buf, 90))
	return buf, err
}

// Close - closes the tab
func (d *chromedpDriver) Close() error {
	d.cancel()
	return nil
}
