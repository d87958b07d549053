package services

import (
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"inventario-app/controllers/idgen"
	"inventario-app/models"
	"inventario-app/repositories"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrImagenNoEncontrada = errors.New("imagen no encontrada")
	ErrFormatoInvalido    = errors.New("formato de imagen invalido")
)

// Anchos de cada variante generada; orig se guarda sin redimensionar.
var variantes = map[string]int{
	"lg": 1200,
	"md": 600,
	"sm": 200,
}

type ImagenService struct {
	db   *gorm.DB
	root string
}

func NewImagenService(db *gorm.DB, root string) *ImagenService {
	return &ImagenService{db: db, root: root}
}

// Guardar corre el pipeline completo: decodificar, escribir las cuatro
// variantes a disco y registrar la ruta md en base de datos. Si la
// insercion falla se borran los archivos recien escritos (best-effort).
func (s *ImagenService) Guardar(productoID uint, file *multipart.FileHeader) (*models.Imagen, error) {
	var producto models.Producto
	if err := s.db.First(&producto, productoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrProductoNoEncontrado
		}
		return nil, err
	}

	escritos, rutaMd, err := s.escribirVariantes(productoID, file)
	if err != nil {
		return nil, err
	}

	imagen := models.Imagen{ProductoID: productoID, ImagePath: rutaMd}
	if err := s.db.Create(&imagen).Error; err != nil {
		s.limpiarArchivos(escritos)
		return nil, err
	}

	return &imagen, nil
}

// Actualizar escribe y registra los archivos nuevos antes de borrar los
// viejos, para nunca quedar sin imagen valida.
func (s *ImagenService) Actualizar(imagenID uint, file *multipart.FileHeader) (*models.Imagen, error) {
	var imagen models.Imagen
	if err := s.db.First(&imagen, imagenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImagenNoEncontrada
		}
		return nil, err
	}

	rutaVieja := imagen.ImagePath

	escritos, rutaMd, err := s.escribirVariantes(imagen.ProductoID, file)
	if err != nil {
		return nil, err
	}

	imagen.ImagePath = rutaMd
	if err := s.db.Save(&imagen).Error; err != nil {
		s.limpiarArchivos(escritos)
		return nil, err
	}

	s.limpiarArchivos(rutasVariantes(rutaVieja))

	return &imagen, nil
}

func (s *ImagenService) Eliminar(imagenID uint) error {
	var imagen models.Imagen
	if err := s.db.First(&imagen, imagenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImagenNoEncontrada
		}
		return err
	}

	if err := s.db.Delete(&imagen).Error; err != nil {
		return err
	}

	s.limpiarArchivos(rutasVariantes(imagen.ImagePath))
	return nil
}

func (s *ImagenService) PorProducto(productoID uint) ([]models.Imagen, error) {
	var imagenes []models.Imagen
	err := s.db.Where("producto_id = ?", productoID).Find(&imagenes).Error
	return imagenes, err
}

// EliminarArchivos limpia las variantes en disco de cada ruta md dada.
// Lo usa el borrado forzado de productos despues de eliminar las filas.
func (s *ImagenService) EliminarArchivos(rutasMd []string) {
	for _, ruta := range rutasMd {
		s.limpiarArchivos(rutasVariantes(ruta))
	}
}

func (s *ImagenService) escribirVariantes(productoID uint, file *multipart.FileHeader) ([]string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return nil, "", ErrFormatoInvalido
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return nil, "", ErrFormatoInvalido
	}

	basename := idgen.GenerateString() + ext
	dirProducto := filepath.Join(s.root, fmt.Sprintf("%d", productoID))

	var escritos []string
	guardar := func(variante string, im image.Image) error {
		dir := filepath.Join(dirProducto, variante)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		ruta := filepath.Join(dir, basename)
		if err := imaging.Save(im, ruta); err != nil {
			return err
		}
		escritos = append(escritos, ruta)
		return nil
	}

	if err := guardar("orig", img); err != nil {
		s.limpiarArchivos(escritos)
		return nil, "", err
	}
	for variante, ancho := range variantes {
		if err := guardar(variante, imaging.Resize(img, ancho, 0, imaging.Lanczos)); err != nil {
			s.limpiarArchivos(escritos)
			return nil, "", err
		}
	}

	rutaMd := filepath.Join(dirProducto, "md", basename)
	return escritos, rutaMd, nil
}

func (s *ImagenService) limpiarArchivos(rutas []string) {
	for _, ruta := range rutas {
		if err := os.Remove(ruta); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", ruta).Msg("failed to remove image file")
		}
	}
}

// rutasVariantes deriva las cuatro rutas en disco a partir de la ruta md
// canonica guardada en base de datos.
func rutasVariantes(rutaMd string) []string {
	base := filepath.Base(rutaMd)
	dirProducto := filepath.Dir(filepath.Dir(rutaMd))

	rutas := []string{filepath.Join(dirProducto, "orig", base)}
	for variante := range variantes {
		rutas = append(rutas, filepath.Join(dirProducto, variante, base))
	}
	return rutas
}
