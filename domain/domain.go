package domain

type ViewsResponse struct {
	Slug  string `json:"slug"`
	Views int64  `json:"views"`
}

type Error struct {
	Error string `json:"error"`
}

// Identity is the best-effort client identity resolved from trusted
// proxy headers. A nil *Identity means the client could not be
// identified; rate limiting and deduplication are skipped in that case
// instead of collapsing all unknown clients onto a single key.
type Identity struct {
	Ip string
}
