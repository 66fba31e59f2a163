package database

// DataStore is the data provider the timeline reads projects from.
// Every source (built-in mock data, a YAML file, a SQLite database) hands
// over the full project collection at once; nothing is mutated while a view
// is open.
type DataStore interface {
	ProjectReader
	Close() error
}
