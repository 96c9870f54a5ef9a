package request

type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type SetQuantityRequest struct {
	// Quantity <= 0 removes the item from the cart.
	Quantity int `json:"quantity" binding:"required"`
}
