package markerpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-markerpdf/internal/fileutil"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// mmPerInch converts page sizes for the Chrome print API.
const mmPerInch = 25.4

// defaultChromeTimeout bounds page loading when ctx has no deadline.
const defaultChromeTimeout = 30 * time.Second

// Chrome prints the SVG page with headless Chrome via go-rod.
// Rod downloads Chromium on first run if none is installed.
// The browser is launched lazily and reused until Close.
type Chrome struct {
	mu      sync.Mutex
	browser *rod.Browser
	timeout time.Duration
}

// NewChrome creates a Chrome renderer.
func NewChrome() *Chrome {
	return &Chrome{timeout: defaultChromeTimeout}
}

// Name returns "chrome".
func (c *Chrome) Name() string { return RendererChrome }

// Requirement reports no PATH requirement; rod locates or downloads Chrome.
func (c *Chrome) Requirement() (Requirement, bool) { return Requirement{}, false }

// ensureBrowser lazily connects to the browser.
func (c *Chrome) ensureBrowser() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New()

	// Pre-installed browser for Docker/containerized environments.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	c.browser = browser
	return browser, nil
}

// Render loads the SVG from the work directory and prints it to PDF with the
// page size of the document and no margins.
func (c *Chrome) Render(ctx context.Context, svg []byte, req RenderRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	svgPath, cleanup, err := writeSVGFile(req.WorkDir, req.OutputPath, svg)
	if err != nil {
		return err
	}
	defer cleanup()

	absPath, err := filepath.Abs(svgPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	browser, err := c.ensureBrowser()
	if err != nil {
		return err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + absPath})
	if err != nil {
		return fmt.Errorf("%w: chrome: creating page: %v", ErrRenderFailed, err)
	}
	defer page.Close()

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: chrome: loading page: %v", ErrRenderFailed, err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(req.Paper.Width / mmPerInch),
		PaperHeight:     floatPtr(req.Paper.Height / mmPerInch),
		MarginTop:       floatPtr(0),
		MarginBottom:    floatPtr(0),
		MarginLeft:      floatPtr(0),
		MarginRight:     floatPtr(0),
		PrintBackground: true,
	})
	if err != nil {
		return fmt.Errorf("%w: chrome: printing: %v", ErrRenderFailed, err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: chrome: reading PDF stream: %v", ErrRenderFailed, err)
	}

	if err := fileutil.WriteBytes(req.OutputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrRenderFailed, req.OutputPath, err)
	}
	return nil
}

// Close releases browser resources.
func (c *Chrome) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
