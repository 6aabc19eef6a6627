package handlers

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// All error responses share the envelope {success: false, message, errors?|error?}.

func failValidation(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "Validation error",
		"errors":  errors,
	})
}

// bindError turns a ShouldBindJSON failure into the 422 field-error envelope.
func bindError(c *gin.Context, err error) {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		failValidation(c, map[string]string{"body": "Malformed request body"})
		return
	}
	fields := map[string]string{}
	for _, e := range errs {
		fields[snakeCase(e.Field())] = fieldMessage(e)
	}
	failValidation(c, fields)
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + e.Param()
	case "max":
		return "Must not be greater than " + e.Param()
	case "eqfield":
		return "Does not match " + snakeCase(e.Param())
	default:
		return "Invalid value"
	}
}

func snakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func failNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

func failForbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"success": false, "message": message})
}

func failUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

// failStorage surfaces the raw storage error detail, matching the envelope's
// error field. Debugging convenience over production hygiene.
func failStorage(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
