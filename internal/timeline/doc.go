// Package timeline turns a project's dated tasks into Gantt bar geometry.
//
// All functions are pure: output depends only on the project, the column
// width (pixels per calendar day) and, for status classification and the
// "today" helpers, the engine's clock. The engine trusts the column width it
// is given; zoom bounds are enforced by the caller.
package timeline
