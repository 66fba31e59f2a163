// Package resolver maps loosely typed project identifiers, as they arrive from
// navigation state or the command line, onto a project from a known list.
//
// Resolution is total: an unmatched or absent identifier falls back to the
// first project instead of failing. Match rules are tried in a fixed order and
// the first rule that matches wins, which keeps results deterministic when
// several projects could satisfy a fuzzy query.
package resolver
