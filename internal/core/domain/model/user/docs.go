// Package user contains marketplace identities and their role bindings.
//
// A User carries contact details, a postal address and exactly one Role that
// never changes after creation. A Binding ties a customer, seller or employee
// key to an existing user; the existence check itself happens in the
// application layer because it needs the repository.
package user
