// Package psqlbuilder оборачивает squirrel с постгресовыми плейсхолдерами ($1, $2, ...),
// чтобы репозитории не повторяли PlaceholderFormat на каждом запросе.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with $-placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT query with $-placeholders.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update starts an UPDATE query with $-placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE query with $-placeholders.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
