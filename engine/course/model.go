// Package course covers course records and their nested curriculum.
package course

import "github.com/RumanAkhtar/lms-app-backend/engine/store"

// Table is the data-service table holding course rows.
const Table = "courses"

// DefaultStatus is assigned server-side when the caller omits a status.
const DefaultStatus = "draft"

// UnknownInstructor is the display label substituted when the joined
// profile row is missing.
const UnknownInstructor = "Unknown instructor"

// Projection embeds the owning instructor's display name.
const Projection = "id,title,short_desc,status,instructor_id,created_at,instructor:profiles(name)"

// CurriculumProjection nests modules, lessons and files under the course.
const CurriculumProjection = "id,title,status," +
	"modules(id,title,position," +
	"lessons(id,title,position," +
	"lesson_files(id,name,url)))"

// Normalize flattens the embedded instructor profile into instructor_name,
// substituting a default label when the profile row is missing.
func Normalize(row store.Row) store.Row {
	name := UnknownInstructor
	if embedded, ok := row["instructor"].(map[string]any); ok {
		if n, ok := embedded["name"].(string); ok && n != "" {
			name = n
		}
	}
	delete(row, "instructor")
	row["instructor_name"] = name
	return row
}

// NormalizeAll applies Normalize to every row.
func NormalizeAll(rows []store.Row) []store.Row {
	for i := range rows {
		rows[i] = Normalize(rows[i])
	}
	return rows
}
