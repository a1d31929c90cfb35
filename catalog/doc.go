// Package catalog turns raw scraped shop listings into the deduplicated,
// immutable product table every other component works from.
//
// Scraped input is messy by nature: duplicate listings, HTML fragments in
// titles, non-breaking-space artifacts in prices, missing fields. Building
// the catalog tolerates all of that with safe defaults instead of failing
// the batch; exactly one Product survives per distinct normalized name.
package catalog
