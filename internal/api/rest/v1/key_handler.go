package v1

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rsa_vault_service/internal/domain/keys"
	"rsa_vault_service/internal/domain/rsa"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyHandler defines the interface for handling key pair operations
type KeyHandler interface {
	GenerateKeyPair(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	ExportPublicKeyByID(ctx *gin.Context)
	ExportPrivateKeyByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	generationService keys.KeyPairGenerationService
	metadataService   keys.KeyPairMetadataService
	materialService   keys.KeyPairMaterialService
	cryptoService     keys.PayloadCryptoService
	defaultBitLength  int
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(
	generationService keys.KeyPairGenerationService,
	metadataService keys.KeyPairMetadataService,
	materialService keys.KeyPairMaterialService,
	cryptoService keys.PayloadCryptoService,
	defaultBitLength int,
) KeyHandler {
	return &keyHandler{
		generationService: generationService,
		metadataService:   metadataService,
		materialService:   materialService,
		cryptoService:     cryptoService,
		defaultBitLength:  defaultBitLength,
	}
}

// GenerateKeyPair handles the POST request to generate and store a key pair
func (handler *keyHandler) GenerateKeyPair(ctx *gin.Context) {
	var request GenerateKeyPairRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid key pair data: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	bitLength := request.BitLength
	if bitLength == 0 {
		bitLength = handler.defaultBitLength
	}

	userID := uuid.New().String() // user management is out of scope for now

	record, err := handler.generationService.Generate(ctx, userID, bitLength)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error generating key pair: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, toMetaResponse(record))
}

// ListMetadata handles the GET request to list stored key pairs with
// optional query parameters
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := keys.NewKeyPairQuery()

	if bitLength := ctx.Query("bit_length"); len(bitLength) > 0 {
		value, err := strconv.Atoi(bitLength)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid bit_length parameter: %v", err.Error())})
			return
		}
		query.BitLength = value
	}

	if created := ctx.Query("dateTimeCreated"); len(created) > 0 {
		value, err := time.Parse(time.RFC3339, created)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid dateTimeCreated parameter: %v", err.Error())})
			return
		}
		query.DateTimeCreated = value
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		value, err := strconv.Atoi(limit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid limit parameter: %v", err.Error())})
			return
		}
		query.Limit = value
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		value, err := strconv.Atoi(offset)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid offset parameter: %v", err.Error())})
			return
		}
		query.Offset = value
	}

	records, err := handler.metadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing key pairs: %v", err.Error())})
		return
	}

	listResponse := []KeyPairMetaResponse{}
	for _, record := range records {
		listResponse = append(listResponse, toMetaResponse(record))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to fetch a stored key pair by ID
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	record, err := handler.metadataService.GetByID(ctx, keyPairID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key pair not found: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, toMetaResponse(record))
}

// ExportPublicKeyByID handles the GET request for exported public material
func (handler *keyHandler) ExportPublicKeyByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	material, err := handler.materialService.ExportPublicKeyByID(ctx, keyPairID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key pair not found: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, KeyMaterialResponse{KeyPairID: keyPairID, Material: material})
}

// ExportPrivateKeyByID handles the GET request for exported private material
func (handler *keyHandler) ExportPrivateKeyByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	material, err := handler.materialService.ExportPrivateKeyByID(ctx, keyPairID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key pair not found: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, KeyMaterialResponse{KeyPairID: keyPairID, Material: material})
}

// Encrypt handles the POST request to encrypt a payload under a stored key
func (handler *keyHandler) Encrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid payload: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(request.Plaintext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid base64 plaintext: %v", err.Error())})
		return
	}

	ciphertext, err := handler.cryptoService.Encrypt(ctx, keyPairID, plaintext)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, rsa.ErrMessageTooLong) {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error encrypting payload: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{
		KeyPairID:  keyPairID,
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	})
}

// Decrypt handles the POST request to decrypt a ciphertext block under a
// stored key
func (handler *keyHandler) Decrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid payload: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid base64 ciphertext: %v", err.Error())})
		return
	}

	plaintext, err := handler.cryptoService.Decrypt(ctx, keyPairID, ciphertext)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, rsa.ErrInvalidPadding) {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, ErrorResponse{Message: fmt.Sprintf("error decrypting payload: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		KeyPairID: keyPairID,
		Plaintext: base64.StdEncoding.EncodeToString(plaintext),
	})
}

// DeleteByID handles the DELETE request to remove a stored key pair
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyPairID := ctx.Param("id")

	if err := handler.metadataService.DeleteByID(ctx, keyPairID); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error deleting key pair: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

func toMetaResponse(record *keys.KeyPairRecord) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              record.ID,
		BitLength:       record.BitLength,
		PublicExponent:  record.PublicExponent,
		DateTimeCreated: record.DateTimeCreated,
		UserID:          record.UserID,
	}
}
