package scrape

// FilterByAccess filters listing stubs by access tier. A listing run lists
// everything, free and premium alike, whether or not a credential is held;
// access control only kicks in at content extraction, where premium articles
// without a credential get a sentinel body instead of a fetch. The
// authenticated flag is threaded through unused so the listing pipeline has
// an explicit seam if that asymmetry ever changes.
func FilterByAccess(stubs []ArticleStub, authenticated bool) []ArticleStub {
	_ = authenticated
	return stubs
}
