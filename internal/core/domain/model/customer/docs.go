// Package customer contains the Customer aggregate.
//
// A customer is a buyer record managed by back office administrators and
// created implicitly during self registration. Customers can carry optional
// contact details and an optional avatar stored in the media store.
package customer
