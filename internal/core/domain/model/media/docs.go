// Package media contains the stored File for uploaded binaries.
package media
