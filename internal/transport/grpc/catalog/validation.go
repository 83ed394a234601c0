package catalog

import "fmt"

func validateProductID(id string) error {
	if id == "" {
		return fmt.Errorf("productId is required")
	}
	return nil
}

func validateCreateProduct(req createProductRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Category == "" {
		return fmt.Errorf("category is required")
	}
	if req.DefaultPrice.Value() == nil {
		return fmt.Errorf("defaultPrice is required")
	}
	return nil
}

func validateUpdateProduct(req updateProductRequest) error {
	if err := validateProductID(req.ProductID); err != nil {
		return err
	}
	if req.SKU == nil && req.Name == nil && req.Description == nil && req.Category == nil &&
		req.Brand == nil && req.Tags == nil && req.DefaultPrice.Value() == nil &&
		req.Configurations == nil && req.ClientPrices == nil {
		return fmt.Errorf("at least one field must be provided")
	}
	return nil
}

func validateSetClientPrice(req setClientPriceRequest) error {
	if err := validateProductID(req.ProductID); err != nil {
		return err
	}
	if req.Price.Value() == nil {
		return fmt.Errorf("price is required")
	}
	return nil
}

func validatePreview(req previewClientPriceRequest) error {
	if err := validateProductID(req.ProductID); err != nil {
		return err
	}
	if req.ClientID == "" || req.ClientEmail == "" {
		return fmt.Errorf("clientId and clientEmail are required")
	}
	return nil
}
