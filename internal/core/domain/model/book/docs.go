// Package book provides the inventory aggregate for the bookstore system.
//
// The Book aggregate owns the available copy count of a title. Stock is only
// mutated through Reserve and Restock, which enforce that the count never goes
// negative and that a restock is the exact reverse of a reservation. Catalog
// attributes (title, year, unit price) are validated at construction.
package book
