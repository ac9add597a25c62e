package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dentalpro-backend/models"
	"dentalpro-backend/utils"
)

type CreateSupplierInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateSupplierInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Active  *bool   `json:"active"`
}

func CreateSupplier(c *gin.Context) {
	var input CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	supplier, err := core.Repos.Suppliers.Create(models.Supplier{
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Active:  true,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func GetSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, core.Repos.Suppliers.List())
}

func UpdateSupplier(c *gin.Context) {
	var input UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	supplier, err := core.Repos.Suppliers.Update(c.Param("id"), func(s *models.Supplier) {
		if input.Name != nil {
			s.Name = *input.Name
		}
		if input.Phone != nil {
			s.Phone = *input.Phone
		}
		if input.Address != nil {
			s.Address = *input.Address
		}
		if input.Active != nil {
			s.Active = *input.Active
		}
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}
