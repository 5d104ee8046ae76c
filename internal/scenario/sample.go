package scenario

// Sample returns the built-in demo cart: books, movies and video games under
// one parent category, a books campaign, a video games campaign and a rate coupon.
func Sample() *Scenario {
	const root = "Movies, Books and Games"
	return &Scenario{
		Categories: []CategorySpec{
			{Name: root},
			{Name: "Books", Parent: root},
			{Name: "Movies", Parent: root},
			{Name: "Video Games", Parent: root},
			{Name: "Music", Parent: root},
		},
		Products: []ProductSpec{
			{Title: "The Lord Of The Rings", Price: "20.00", Category: "Books"},
			{Title: "Da Vinci Code", Price: "15.00", Category: "Books"},
			{Title: "War And Peace", Price: "25.00", Category: "Books"},
			{Title: "Fight Club", Price: "7.99", Category: "Movies"},
			{Title: "The Matrix", Price: "6.99", Category: "Movies"},
			{Title: "The Witcher 3", Price: "40.00", Category: "Video Games"},
			{Title: "Red Dead Redemption 2", Price: "60.00", Category: "Video Games"},
			{Title: "The Last Of Us", Price: "20.00", Category: "Video Games"},
		},
		Items: []ItemSpec{
			{Product: "The Lord Of The Rings", Quantity: 3},
			{Product: "Da Vinci Code", Quantity: 2},
			{Product: "War And Peace", Quantity: 1},
			{Product: "Fight Club", Quantity: 5},
			{Product: "The Matrix", Quantity: 4},
			{Product: "The Witcher 3", Quantity: 2},
			{Product: "Red Dead Redemption 2", Quantity: 1},
			{Product: "The Last Of Us", Quantity: 4},
		},
		Campaigns: []CampaignSpec{
			{Category: "Books", Discount: "20", MinItemCount: 5, Type: "rate"},
			{Category: "Movies", Discount: "25", MinItemCount: 10, Type: "rate"},
			{Category: "Video Games", Discount: "15", MinItemCount: 5, Type: "amount"},
		},
		Coupon: &CouponSpec{MinPriceTotal: "300", Discount: "10", Type: "rate"},
	}
}
