package elicense

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// RawSlot is the attribute tuple scraped off one open reservation cell.
// DateCode is the compact YYYYMMDD form, the other three fields are the
// site's display strings (Week comes already parenthesized, e.g. "(金)").
type RawSlot struct {
	DateCode string
	Date     string
	Time     string
	Week     string
}

// Client is a logged-in-or-not session against the e-license reservation
// site. It keeps the currently shown week page so pagination works the
// same way it does in a browser. One client is meant to live for exactly
// one collection run.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	studentId string
	password  string

	doc *goquery.Document
}

type ClientOptions struct {
	BaseUrl   string
	StudentId string
	Password  string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	c := &Client{
		BaseUrl:   baseUrl,
		Http:      client,
		studentId: opts.StudentId,
		password:  opts.Password,
	}
	return c, nil
}

// Login fetches the reservation entry page and posts the student
// id/password form. It reports false (without an error) when the site
// bounces back to the login form, which is how wrong credentials show up.
func (c *Client) Login(ctx context.Context) (bool, error) {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get("")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login page")
		return false, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse login page html")
		return false, err
	}

	form := doc.Find("input#studentId").Closest("form")
	if form.Length() == 0 {
		span.SetStatus(codes.Error, "failed to find login form")
		return false, fmt.Errorf("could not find the login form on %s", c.BaseUrl)
	}

	fields := map[string]string{
		"studentId": c.studentId,
		"password":  c.password,
	}
	form.Find("input[type=hidden]").Each(func(_ int, input *goquery.Selection) {
		name := input.AttrOr("name", "")
		if name == "" {
			return
		}
		fields[name] = input.AttrOr("value", "")
	})

	action := form.AttrOr("action", "")
	target, err := c.resolve(action)
	if err != nil {
		span.SetStatus(codes.Error, "failed to resolve login form action")
		return false, err
	}

	res, err = c.Http.R().
		SetContext(ctx).
		SetFormData(fields).
		Post(target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return false, err
	}
	doc, err = goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse post-login html")
		return false, err
	}

	// the site answers a bad login with the same form again
	if doc.Find("input#studentId").Length() > 0 {
		return false, nil
	}

	c.doc = doc
	return true, nil
}

// Slots scrapes the open reservation cells off the currently shown week.
func (c *Client) Slots(ctx context.Context) ([]RawSlot, error) {
	_, span := tracer.Start(ctx, "client:Slots")
	defer span.End()

	if c.doc == nil {
		span.SetStatus(codes.Error, "no current page")
		return nil, fmt.Errorf("no current page, login first")
	}

	return parseSlots(c.doc), nil
}

// NextWeek follows the site's next-week link. A missing link means the
// last reachable week is already shown, which is reported as (false, nil).
func (c *Client) NextWeek(ctx context.Context) (bool, error) {
	ctx, span := tracer.Start(ctx, "client:NextWeek")
	defer span.End()

	if c.doc == nil {
		span.SetStatus(codes.Error, "no current page")
		return false, fmt.Errorf("no current page, login first")
	}

	href, ok := nextWeekHref(c.doc)
	if !ok {
		return false, nil
	}
	target, err := c.resolve(href)
	if err != nil {
		span.SetStatus(codes.Error, "failed to resolve next week link")
		return false, err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch next week")
		return false, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse next week html")
		return false, err
	}

	c.doc = doc
	return true, nil
}

// Close releases the session. The site keeps no server-side resource
// worth logging out of, so dropping idle connections is enough.
func (c *Client) Close() {
	c.doc = nil
	c.Http.GetClient().CloseIdleConnections()
}

func (c *Client) resolve(href string) (string, error) {
	if href == "" {
		return c.BaseUrl.String(), nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	return c.BaseUrl.ResolveReference(ref).String(), nil
}
