// Package product contains the Product aggregate.
//
// A product is a sellable item with a non-negative price and a non-negative
// stock counter. Stock moves through DeductStock when orders are placed and
// Restock when cancelled orders release their lines. Products can carry an
// inline image served by the catalogue endpoints.
package product
