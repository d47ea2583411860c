// Package account contains the Account aggregate and the Role enum.
//
// Accounts are the login identities of the back office. Passwords are stored
// as bcrypt hashes only. Self registered accounts carry the user role and a
// link to the customer created alongside them; the seeded administrator has
// the admin role and no customer link.
package account
