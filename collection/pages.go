package collection

import "context"

// DefaultPerPage is the page size used when Paginate is called without an
// explicit size.
var DefaultPerPage = 10

// Pages walks a paginated read. It captures the compiled descriptor at
// dispatch time, so advancing pages never touches the builder the read came
// from.
type Pages struct {
	transport Transport
	path      string
	query     Descriptor
	base      int

	// PerPage is the page size requested from the service.
	PerPage int
	// Items holds the rows of the current page.
	Items []Document

	page int
}

// Paginate compiles the accumulated query state with the given page size and
// issues exactly one read for the first page. perPage <= 0 selects
// DefaultPerPage.
func (c *Collection) Paginate(ctx context.Context, perPage int) (*Pages, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	c.acc.perPage = perPage

	query := c.BuildQuery()
	raw, err := c.client.transport.Get(ctx, c.path, query)
	if err != nil {
		return nil, err
	}
	items, err := decodeDocuments(raw)
	if err != nil {
		return nil, err
	}

	return &Pages{
		transport: c.client.transport,
		path:      c.path,
		query:     *query,
		base:      query.Offset,
		PerPage:   perPage,
		Items:     items,
		page:      1,
	}, nil
}

// Page returns the 1-based number of the current page.
func (p *Pages) Page() int { return p.page }

// Next fetches the following page into Items and returns it. An empty result
// means the walk is done; Items keeps the empty page.
func (p *Pages) Next(ctx context.Context) ([]Document, error) {
	query := p.query
	query.Offset = p.base + p.page*p.PerPage

	raw, err := p.transport.Get(ctx, p.path, &query)
	if err != nil {
		return nil, err
	}
	items, err := decodeDocuments(raw)
	if err != nil {
		return nil, err
	}

	p.page++
	p.Items = items
	return items, nil
}
