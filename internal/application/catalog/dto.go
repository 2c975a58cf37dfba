package catalog

// CreateProductRequest carries the fields needed to create a product
type CreateProductRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	AmountToSale   int    `json:"amount_to_sale"`
	AmountSupplier int    `json:"amount_supplier"`
	Stock          int    `json:"stock"`
}

// UpdateProductRequest carries a partial product update; nil fields are
// left unchanged
type UpdateProductRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	AmountToSale   *int    `json:"amount_to_sale"`
	AmountSupplier *int    `json:"amount_supplier"`
	Stock          *int    `json:"stock"`
}

// LowStockResponse lists products under the restock threshold
type LowStockResponse struct {
	Products  []ProductSummary `json:"products"`
	Count     int              `json:"count"`
	Threshold int              `json:"threshold"`
}

// ProductSummary is the list representation of a product
type ProductSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	AmountToSale   int    `json:"amount_to_sale"`
	AmountSupplier int    `json:"amount_supplier"`
	Stock          int    `json:"stock"`
}

// BulkUpdateResult reports how many products had their supplier cost
// refreshed from quotes
type BulkUpdateResult struct {
	Updated int `json:"updated"`
}
