package generation

import "roomlift-backend/internal/options"

// stockImages are the room-keyed substitutes served when the remote path
// produces nothing usable.
var stockImages = map[options.RoomType]string{
	options.RoomLivingRoom: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=1200&q=80",
	options.RoomBedroom:    "https://images.unsplash.com/photo-1505693416388-ac5ce068fe85?w=1200&q=80",
	options.RoomKitchen:    "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=1200&q=80",
	options.RoomBathroom:   "https://images.unsplash.com/photo-1552321554-5fefe8c9ef14?w=1200&q=80",
	options.RoomDiningRoom: "https://images.unsplash.com/photo-1617806118233-18e1de247200?w=1200&q=80",
	options.RoomHomeOffice: "https://images.unsplash.com/photo-1593476550610-87baa860004a?w=1200&q=80",
}

const defaultStockImage = "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=1200&q=80"

func StockImage(room options.RoomType) string {
	if url, ok := stockImages[room]; ok {
		return url
	}
	return defaultStockImage
}
