package packets

type ProfileResponse struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
