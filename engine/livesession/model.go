// Package livesession covers live session records. Instructors operate on
// their own rows only; admins are unscoped.
package livesession

// Table is the data-service table holding live session rows.
const Table = "live_sessions"

// OwnerColumn names the owning instructor on a session row.
const OwnerColumn = "instructor_id"

// Projection is the field set returned for session reads.
const Projection = "id,title,status,starts_at,duration_minutes,instructor_id,created_at"

// DefaultStatus is assigned server-side when the caller omits a status.
const DefaultStatus = "scheduled"
