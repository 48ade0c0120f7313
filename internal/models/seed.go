package models

// 目录种子数据。历史上三份入口脚本各带一份略有出入的表，
// 这里收敛为唯一一份：Before You Ask 与 Board Game components 定价 800，其余 700。

type seedRow struct {
	design string
	size   string
	qty    int
	price  int64
	color  string
}

var seedCatalog = []seedRow{
	// Winging It - 13 total
	{"Winging It", "S", 2, 700, "Black"},
	{"Winging It", "M", 2, 700, "Black"},
	{"Winging It", "L", 3, 700, "Black"},
	{"Winging It", "XL", 3, 700, "Black"},
	{"Winging It", "2XL", 3, 700, "Black"},

	// Power to the Meeple - 12 total
	{"Power to the Meeple", "S", 2, 700, "Navy"},
	{"Power to the Meeple", "M", 2, 700, "Navy"},
	{"Power to the Meeple", "L", 2, 700, "Navy"},
	{"Power to the Meeple", "XL", 3, 700, "Navy"},
	{"Power to the Meeple", "2XL", 3, 700, "Navy"},

	// The Board Gamer - 7 total
	{"The Board Gamer", "L", 3, 700, "Black"},
	{"The Board Gamer", "XL", 2, 700, "Black"},
	{"The Board Gamer", "2XL", 2, 700, "Black"},

	// I Don't Make the Rules - 15 total
	{"I Don't Make the Rules", "S", 4, 700, "Black"},
	{"I Don't Make the Rules", "M", 4, 700, "Black"},
	{"I Don't Make the Rules", "L", 3, 700, "Black"},
	{"I Don't Make the Rules", "XL", 1, 700, "Black"},
	{"I Don't Make the Rules", "2XL", 3, 700, "Black"},

	// VIRTU Meeple - 15 total
	{"VIRTU Meeple", "S", 4, 700, "Navy"},
	{"VIRTU Meeple", "M", 4, 700, "Navy"},
	{"VIRTU Meeple", "L", 2, 700, "Navy"},
	{"VIRTU Meeple", "XL", 3, 700, "Navy"},
	{"VIRTU Meeple", "2XL", 2, 700, "Navy"},

	// Before You Ask - 13 total
	{"Before You Ask", "S", 4, 800, "Black"},
	{"Before You Ask", "M", 4, 800, "Black"},
	{"Before You Ask", "L", 1, 800, "Black"},
	{"Before You Ask", "XL", 2, 800, "Black"},
	{"Before You Ask", "2XL", 2, 800, "Black"},

	// Settle Down - 11 total
	{"Settle Down", "M", 1, 700, "Navy"},
	{"Settle Down", "L", 4, 700, "Navy"},
	{"Settle Down", "XL", 2, 700, "Navy"},
	{"Settle Down", "2XL", 4, 700, "Navy"},

	// Game Night - 17 total
	{"Game Night", "S", 4, 700, "Black"},
	{"Game Night", "M", 4, 700, "Black"},
	{"Game Night", "L", 2, 700, "Black"},
	{"Game Night", "XL", 2, 700, "Black"},
	{"Game Night", "2XL", 5, 700, "Black"},

	// Board Game components - 16 total
	{"Board Game components", "S", 4, 800, "Navy"},
	{"Board Game components", "M", 4, 800, "Navy"},
	{"Board Game components", "L", 3, 800, "Navy"},
	{"Board Game components", "XL", 1, 800, "Navy"},
	{"Board Game components", "2XL", 4, 800, "Navy"},
}

// SeedCatalog 返回初始目录的全部 SKU 行（每次调用返回新切片，ID 由数据库分配）
func SeedCatalog() []TShirt {
	items := make([]TShirt, 0, len(seedCatalog))
	for _, row := range seedCatalog {
		items = append(items, TShirt{
			DesignName: row.design,
			Size:       row.size,
			Color:      row.color,
			Price:      NewMoneyFromInt(row.price),
			Quantity:   row.qty,
		})
	}
	return items
}

// SeedCatalogSize 初始目录的 SKU 行数
func SeedCatalogSize() int {
	return len(seedCatalog)
}

// SeedIfEmpty 库存表为空时写入初始目录，已有数据则不做任何事
func SeedIfEmpty() error {
	if DB == nil {
		return nil
	}
	var count int64
	if err := DB.Model(&TShirt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	items := SeedCatalog()
	return DB.Create(&items).Error
}
