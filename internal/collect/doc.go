// Package collect turns rows delivered by a SQL execution callback into
// typed student records.
//
// A Collector is bound to the two-column projection of the students
// query: column 0 is the name and column 1 is the average, whatever the
// column names say.
package collect
