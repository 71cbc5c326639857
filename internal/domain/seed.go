package domain

// SeedSnapshot is the catalog and user set installed on first startup, when
// the blob store has no snapshot under the application key.
func SeedSnapshot() Snapshot {
	return Snapshot{
		Menu: []MenuItem{
			{ID: "1", Name: "Original Recipe Chicken", Category: "Chicken", Price: 8.99, Description: "2 pieces of our famous chicken", Image: "🍗", Available: true},
			{ID: "2", Name: "Zinger Burger", Category: "Burgers", Price: 6.99, Description: "Spicy chicken fillet burger", Image: "🍔", Available: true},
			{ID: "3", Name: "Bucket Meal", Category: "Meals", Price: 24.99, Description: "8 pieces chicken + 4 sides", Image: "🧆", Available: true},
			{ID: "4", Name: "French Fries", Category: "Sides", Price: 2.99, Description: "Crispy golden fries", Image: "🍟", Available: true},
			{ID: "5", Name: "Coleslaw", Category: "Sides", Price: 2.49, Description: "Fresh coleslaw salad", Image: "🫐", Available: true},
			{ID: "6", Name: "Pepsi", Category: "Drinks", Price: 1.99, Description: "Regular Pepsi", Image: "🥤", Available: true},
		},
		Orders: []Order{},
		Users: []User{
			{ID: "1", Name: "Admin User", Email: "admin@kfc.com", Role: RoleAdmin, Password: "admin123"},
			{ID: "2", Name: "John Doe", Email: "john@example.com", Role: RoleCustomer, Password: "customer123"},
		},
	}
}
