// Package acl is the anti-corruption layer between the service and external catalogues.
//
// Adapters here own the external DTOs, which never leave the package, and translate both
// payloads and failures into domain terms:
//
//   - 404 → domain.ErrNotFound
//   - 401/403 → domain.ErrForbidden
//   - other 4xx → domain.ErrValidation
//   - 429, 5xx, transport errors, open circuit, exhausted retries → domain.ErrUnavailable
//
// The only adapter today is [AuthorDirectory], which enriches author pages with data from the
// quotable.io author search.
package acl
