package scrape

// Markup anchors for Tempo.co pages, collected in one place so a site
// redesign only touches this file. Class values are matched against the
// whole class attribute, not individual class names, because the site's
// utility-class soup is only unique as a full string.
const (
	// Index listing pages.
	listContainerClass = "flex flex-col divide-y divide-neutral-500"
	premiumMarkerClass = "inline-flex bg-primary-main p-[1.7px] rounded-[1px]"

	// Article pages.
	articleContainerClass = "grow space-y-6 overflow-x-clip z-10"
	publishedTimeProperty = "article:published_time"
	publishDateMetaName   = "publish-date"
	authorMetaName        = "author"
	contentWrapperID      = "content-wrapper"
	tagsContainerID       = "article-tags"
	editorPickPrefix      = "Pilihan Editor:"
	adsLogoPath           = "/img/logo-tempo-ads.svg"
)

// Site origins. Category derivation and the article fetch path use the bare
// origin; the content extraction loop resolves relative listing URLs against
// the www host, mirroring the upstream site's own redirects.
const (
	SiteOrigin    = "https://tempo.co"
	SiteOriginWWW = "https://www.tempo.co"
)

// DefaultCategory is the sentinel category assigned when an article URL has
// no path segments to derive one from.
const DefaultCategory = "indeks"

// Sentinel content strings substituted when full-content extraction is not
// attempted or comes back empty-handed.
const (
	ContentUnavailableNoAuth   = "[Content not available: Non-free article and no authentication provided]"
	ContentUnavailableNotFound = "[Content not available: Article structure not found (likely photo/video archive)]"
)
