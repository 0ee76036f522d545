// Package gallery persists galleries, assets, and collections in SQLite and
// owns the rules the suggestion engine relies on.
//
// The Store manages database connections, schema migrations, collection sort
// order, and the bulk reassignment operation that links assets to a
// collection. Reassignment re-verifies that every asset belongs to the
// collection's gallery before mutating, making the store the sole arbiter of
// final state under concurrent callers. Missing galleries and collections
// surface the services.ErrNotFound marker.
//
// Treat this package as the single source of truth for asset-to-collection
// semantics; schema changes add a migration file under migrations/.
package gallery
