package httpserver

import (
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type browser struct {
	t      *testing.T
	client *http.Client
	base   string
}

func newBrowser(t *testing.T, fetcher *stubFetcher) *browser {
	t.Helper()
	srv := httptest.NewServer(newLookupRouter(t, fetcher))
	t.Cleanup(srv.Close)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{t: t, client: &http.Client{Jar: jar}, base: srv.URL}
}

func (b *browser) get(path string) (int, string) {
	b.t.Helper()
	resp, err := b.client.Get(b.base + path)
	require.NoError(b.t, err)
	return readResponse(b.t, resp)
}

func (b *browser) post(path string, form url.Values) (int, string) {
	b.t.Helper()
	resp, err := b.client.PostForm(b.base+path, form)
	require.NoError(b.t, err)
	return readResponse(b.t, resp)
}

func readResponse(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestLookupInitialPage(t *testing.T) {
	b := newBrowser(t, &stubFetcher{})

	status, body := b.get("/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Start searching")
	assert.Contains(t, body, `name="firstName"`)
	assert.Contains(t, body, `type="date" name="dateOfBirth"`)
	assert.Contains(t, body, `<option value="Married">Married</option>`)
	assert.NotContains(t, body, "No results found")
}

func TestLookupSearchShowsCards(t *testing.T) {
	fetcher := &stubFetcher{customers: sampleCustomers()}
	b := newBrowser(t, fetcher)

	status, body := b.post("/search", url.Values{"firstName": {"John"}, "lastName": {""}})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "?q=John", fetcher.lastQuery())
	assert.Contains(t, body, "1 result")
	assert.Contains(t, body, "John Smith")
	assert.Contains(t, body, "Austin, TX")
	assert.Contains(t, body, "Mar 15, 1985")
	assert.Contains(t, body, "john@example.com")
	assert.Contains(t, body, `value="John"`)
	assert.NotContains(t, body, "Joan Jett")

	// state survives a reload
	_, body = b.get("/")
	assert.Contains(t, body, "John Smith")
}

func TestLookupSearchNoMatches(t *testing.T) {
	b := newBrowser(t, &stubFetcher{customers: sampleCustomers()})

	_, body := b.post("/search", url.Values{"lastName": {"nobody"}})
	assert.Contains(t, body, "No results found")
	assert.NotContains(t, body, "Start searching")
}

func TestLookupSearchFailureShowsError(t *testing.T) {
	b := newBrowser(t, &stubFetcher{err: errors.New("failed to fetch customers")})

	_, body := b.post("/search", url.Values{"firstName": {"John"}})
	assert.Contains(t, body, "failed to fetch customers")
	assert.NotContains(t, body, "No results found")
	assert.NotContains(t, body, "result</p>")
}

func TestLookupResetReturnsToIdle(t *testing.T) {
	b := newBrowser(t, &stubFetcher{customers: sampleCustomers()})

	b.post("/search", url.Values{"firstName": {"John"}})
	status, body := b.post("/reset", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Start searching")
	assert.NotContains(t, body, "John Smith")
	assert.NotContains(t, body, `value="John"`)
}

func TestLookupDetailOpenAndClose(t *testing.T) {
	b := newBrowser(t, &stubFetcher{customers: sampleCustomers()})
	b.post("/search", url.Values{"lastName": {"smith"}})

	status, body := b.post("/customers/c-1/select", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Customer details")
	assert.Contains(t, body, "****1234")
	assert.Contains(t, body, "1 Main St, Austin, TX 78701")

	status, body = b.post("/detail/close", nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, "Customer details")
	assert.Contains(t, body, "John Smith")
}

func TestLookupSelectUnknownCustomer(t *testing.T) {
	b := newBrowser(t, &stubFetcher{customers: sampleCustomers()})

	status, _ := b.post("/customers/c-1/select", nil)
	assert.Equal(t, http.StatusConflict, status)

	b.post("/search", url.Values{"lastName": {"smith"}})
	status, body := b.post("/customers/c-2/select", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "not in the current results")
}

func TestLookupSessionsAreIsolated(t *testing.T) {
	fetcher := &stubFetcher{customers: sampleCustomers()}
	first := newBrowser(t, fetcher)
	first.post("/search", url.Values{"firstName": {"John"}})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	second := &browser{t: t, client: &http.Client{Jar: jar}, base: first.base}
	_, body := second.get("/")
	assert.Contains(t, body, "Start searching")
	assert.NotContains(t, body, "John Smith")
}
