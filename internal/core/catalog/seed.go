package catalog

import (
	"recipe-admin/internal/pkg/common"
)

// seedIngredients 內建標準食材（越南常見食材），
// 營養值為每 100 基準單位，均價為每基準單位（VND）
var seedIngredients = []StandardIngredient{
	// 肉類與海鮮
	{ID: "thit-bo", Name: "Thịt bò", Category: CategoryMeat, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 250, Protein: 26, Carbs: 0, Fat: 15, Fiber: 0, Sodium: 55}, AveragePrice: 300},
	{ID: "thit-heo", Name: "Thịt heo", Category: CategoryMeat, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 260, Protein: 27, Carbs: 0, Fat: 21, Fiber: 0, Sodium: 60}, AveragePrice: 150},
	{ID: "thit-ga", Name: "Thịt gà", Category: CategoryMeat, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sodium: 74}, AveragePrice: 120},
	{ID: "ca-basa", Name: "Cá basa", Category: CategoryMeat, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 158, Protein: 15, Carbs: 0, Fat: 10, Fiber: 0, Sodium: 50}, AveragePrice: 80},
	{ID: "tom", Name: "Tôm", Category: CategoryMeat, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 99, Protein: 24, Carbs: 0.2, Fat: 0.3, Fiber: 0, Sodium: 111}, AveragePrice: 250},
	{ID: "muc", Name: "Mực", Category: CategoryMeat, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 92, Protein: 15.6, Carbs: 3.1, Fat: 1.4, Fiber: 0, Sodium: 44}, AveragePrice: 200},

	// 蔬菜類
	{ID: "hanh-tay", Name: "Hành tây", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Fiber: 1.7, Sodium: 4}, AveragePrice: 25},
	{ID: "ca-chua", Name: "Cà chua", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2, Sodium: 5}, AveragePrice: 25},
	{ID: "ca-rot", Name: "Cà rốt", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fiber: 2.8, Sodium: 69}, AveragePrice: 20},
	{ID: "rau-muong", Name: "Rau muống", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 19, Protein: 2.6, Carbs: 3.1, Fat: 0.2, Fiber: 2.1, Sodium: 113}, AveragePrice: 15},
	{ID: "gia-do", Name: "Giá đỗ", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 30, Protein: 3, Carbs: 5.9, Fat: 0.2, Fiber: 1.8, Sodium: 6}, AveragePrice: 15},
	{ID: "hanh-la", Name: "Hành lá", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 32, Protein: 1.8, Carbs: 7.3, Fat: 0.2, Fiber: 2.6, Sodium: 16}, AveragePrice: 30},
	{ID: "rau-thom", Name: "Rau thơm", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 23, Protein: 2.1, Carbs: 2.7, Fat: 0.5, Fiber: 2, Sodium: 30}, AveragePrice: 40},
	{ID: "chanh", Name: "Chanh", Category: CategoryVegetable, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 29, Protein: 1.1, Carbs: 9.3, Fat: 0.3, Fiber: 2.8, Sodium: 2}, AveragePrice: 40},

	// 香料與調味
	{ID: "toi", Name: "Tỏi", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5, Fiber: 2.1, Sodium: 17}, AveragePrice: 60},
	{ID: "gung", Name: "Gừng", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 80, Protein: 1.8, Carbs: 17.8, Fat: 0.8, Fiber: 2, Sodium: 13}, AveragePrice: 50},
	{ID: "ot", Name: "Ớt", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 40, Protein: 1.9, Carbs: 8.8, Fat: 0.4, Fiber: 1.5, Sodium: 9}, AveragePrice: 60},
	{ID: "xa", Name: "Sả", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 99, Protein: 1.8, Carbs: 25, Fat: 0.5, Fiber: 0, Sodium: 6}, AveragePrice: 30},
	{ID: "nuoc-mam", Name: "Nước mắm", Category: CategorySpice, BaseUnit: "ml",
		NutritionPer100: common.NutritionInfo{Calories: 35, Protein: 5, Carbs: 3.6, Fat: 0, Fiber: 0, Sodium: 7851}, AveragePrice: 60},
	{ID: "duong", Name: "Đường", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 387, Protein: 0, Carbs: 100, Fat: 0, Fiber: 0, Sodium: 1}, AveragePrice: 25},
	{ID: "muoi", Name: "Muối", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 0, Protein: 0, Carbs: 0, Fat: 0, Fiber: 0, Sodium: 38758}, AveragePrice: 10},
	{ID: "tieu", Name: "Tiêu", Category: CategorySpice, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 251, Protein: 10, Carbs: 64, Fat: 3.3, Fiber: 25, Sodium: 20}, AveragePrice: 300},

	// 乳製品與蛋
	{ID: "trung-ga", Name: "Trứng gà", Category: CategoryDairy, BaseUnit: "quả",
		NutritionPer100: common.NutritionInfo{Calories: 6600, Protein: 560, Carbs: 60, Fat: 440, Fiber: 0, Sodium: 6200}, AveragePrice: 3500},
	{ID: "sua-tuoi", Name: "Sữa tươi", Category: CategoryDairy, BaseUnit: "ml",
		NutritionPer100: common.NutritionInfo{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Fiber: 0, Sodium: 43}, AveragePrice: 35},

	// 其他
	{ID: "banh-pho", Name: "Bánh phở", Category: CategoryOther, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 109, Protein: 1.8, Carbs: 25, Fat: 0.2, Fiber: 0.9, Sodium: 15}, AveragePrice: 25},
	{ID: "bun", Name: "Bún", Category: CategoryOther, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 110, Protein: 1.7, Carbs: 25.7, Fat: 0.1, Fiber: 1, Sodium: 10}, AveragePrice: 20},
	{ID: "gao", Name: "Gạo", Category: CategoryOther, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 360, Protein: 6.6, Carbs: 79, Fat: 0.6, Fiber: 1.4, Sodium: 5}, AveragePrice: 20},
	{ID: "banh-mi", Name: "Bánh mì", Category: CategoryOther, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, Fiber: 2.7, Sodium: 490}, AveragePrice: 15},
	{ID: "dau-hu", Name: "Đậu hũ", Category: CategoryOther, BaseUnit: "g",
		NutritionPer100: common.NutritionInfo{Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, Fiber: 0.3, Sodium: 7}, AveragePrice: 40},
	{ID: "dau-an", Name: "Dầu ăn", Category: CategoryOther, BaseUnit: "ml",
		NutritionPer100: common.NutritionInfo{Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sodium: 0}, AveragePrice: 50},
}
