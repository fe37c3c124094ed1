// Package core provides the business logic of the applicant dashboard.
//
// This package has no UI dependencies. It can be used by the web handlers,
// the dashctl CLI, or tests without modification.
//
// # Architecture
//
//   - Store: where applicant records live. [PostgresStore] backs production,
//     [MemoryStore] backs tests and the in-memory dev mode.
//   - Service: the entry point for every operation (list, add, status
//     changes, deletion, dashboard summary).
//   - List views: registered via [Register], each [ListView] pairs a column
//     definition list with the options of the table engine (search key,
//     filter key and options, page size, export override).
//
// # List Views
//
// Views are registered at init time by package views:
//
//	core.Register(core.ListView{
//	    Key:   "applicants",
//	    Label: "Applicants",
//	    Columns: []table.Column{
//	        {Key: "name", Header: "Name", Sortable: true},
//	        {Key: "status", Header: "Status"},
//	    },
//	    Options: table.Options{SearchKey: "name", FilterKey: "status"},
//	    Records: core.ApplicantRecords,
//	})
//
// The records of a view are fetched in full and handed to the table engine,
// which searches, filters, sorts and paginates them in memory.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - DB001-DB006: Database errors (duplicates, connections, timeouts)
//   - VAL001-VAL004: Validation errors (required fields, formats)
//   - APP001-APP002: Applicant and view lookups
//   - REQ001-REQ003: Request errors (cancelled, timeout, bad body)
package core
