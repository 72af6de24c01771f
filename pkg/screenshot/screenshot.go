package screenshot

import (
	"bitcat/config"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// TakeScreenshot takes a screenshot of the domain landing page and
// returns the path of the png file
func TakeScreenshot(domain string, cfg *config.Configuration) string {
	url := getFinalURL(domain)

	if url == "" {
		return ""
	}

	quality := 90

	opts := []chromedp.ExecAllocatorOption{}
	opts = append(opts, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(1920, 1080),
		chromedp.IgnoreCertErrors,
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	tabCtx, cancelTabCtx := context.WithTimeout(browserCtx, 15*time.Second)
	defer cancelTabCtx()

	var buf []byte
	err := chromedp.Run(
		tabCtx,
		chromedp.Tasks{
			chromedp.Navigate(url),
			chromedp.Sleep(time.Second * 3),
			chromedp.FullScreenshot(&buf, quality),
		},
	)
	if err != nil {
		cfg.Log.Warnf("Can't take a screenshot of domain '%v': %v", domain, err)
		return ""
	}

	file := filepath.Join(cfg.ScreenshotDir, domain+".png")
	if err = os.WriteFile(file, buf, 0o644); err != nil {
		cfg.Log.Warnf("Can't write the .png of the screenshot of domain '%v': %v", domain, err)
		return ""
	}
	cfg.Log.Infof("Screenshot taken for domain '%v'", domain)
	return file
}

// check if the website is online and if a redirect is required
func getFinalURL(domain string) string {
	res, err := http.Get("https://" + domain)
	if err != nil {
		return ""
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return ""
	}

	return res.Request.URL.String()
}
