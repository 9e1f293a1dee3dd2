// Package cache provides the generic LRU cache behind every per-font lookup
// table in ninebox (glyph resolution, parsed input, random batches, widths).
//
// Caches are owned by the component that fills them and registered with a
// font session, which clears them wholesale whenever the active font or
// master changes:
//
//	lookups := cache.New[lookupKey, bool]("glyph-lookup", 1024)
//	sess.Register(lookups)
//
// Entries never outlive the font identity they were computed for; there is
// no per-entry invalidation.
package cache
