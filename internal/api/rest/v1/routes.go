package v1

import (
	"rsa_vault_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	generationService keys.KeyPairGenerationService,
	metadataService keys.KeyPairMetadataService,
	materialService keys.KeyPairMaterialService,
	cryptoService keys.PayloadCryptoService,
	defaultBitLength int) {

	v1 := r.Group(BasePath) // lookup in version file

	keyHandler := NewKeyHandler(generationService, metadataService, materialService, cryptoService, defaultBitLength)
	v1.POST("/keys", keyHandler.GenerateKeyPair)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/public", keyHandler.ExportPublicKeyByID)
	v1.GET("/keys/:id/private", keyHandler.ExportPrivateKeyByID)
	v1.POST("/keys/:id/encrypt", keyHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", keyHandler.Decrypt)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)
}
