package migration

import (
	"Recipe-Catalog-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Vocabulary tables first, then recipes, then the join tables and
	// roster that reference them.
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Printf("Error migrating ingredients table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Tag{}); err != nil {
		log.Printf("Error migrating tags table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Printf("Error migrating recipes table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Instruction{}); err != nil {
		log.Printf("Error migrating instructions table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		log.Printf("Error migrating recipe_ingredients table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeTag{}); err != nil {
		log.Printf("Error migrating recipe_tags table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RosterEntry{}); err != nil {
		log.Printf("Error migrating roster table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
