package entity

// CategoriasPorDefecto es el conjunto cerrado de etiquetas de dominio
// (construcción/eléctrico) usado si la configuración no define otro.
var CategoriasPorDefecto = []string{
	"aire_acondicionado",
	"aislantes",
	"albañileria",
	"almacen_dormitorios",
	"alumbrado",
	"baterias",
	"c_d",
	"cable",
	"cables",
	"calentadores",
	"canalizaciones",
	"charolas",
	"cinchos",
	"componente",
	"conductor",
	"contactos",
	"contactos_regulados",
	"control_acceso",
	"control_almacen",
	"datos",
	"eléctrico",
	"equipo_medición",
	"equipo_protección",
	"fibra_óptica",
	"fuse_panel",
	"fusibles",
	"gasolina",
	"general",
	"herramienta",
	"herreria",
	"interruptores",
	"kit para cursos",
	"limpieza",
	"miscelaneos",
	"motores",
	"papelería",
	"pintura",
	"planta_emergencia",
	"plomeria",
	"racks",
	"referencia",
	"registros",
	"regletas",
	"seguridad",
	"soportes",
	"tablaroca",
	"tableros",
	"tierras",
	"tornilleria",
	"zapatas",
}

// UnidadesPorDefecto unidades de medida ofrecidas en el formulario de entrada.
var UnidadesPorDefecto = []string{"pieza", "metro", "litro", "kg"}

// Catalogos conjuntos cerrados vigentes (configuración o valores por defecto).
type Catalogos struct {
	Categorias []string
	Unidades   []string
}

// NewCatalogos construye los catálogos aplicando los valores por defecto
// cuando la configuración viene vacía.
func NewCatalogos(categorias, unidades []string) Catalogos {
	if len(categorias) == 0 {
		categorias = CategoriasPorDefecto
	}
	if len(unidades) == 0 {
		unidades = UnidadesPorDefecto
	}
	return Catalogos{Categorias: categorias, Unidades: unidades}
}

// CategoriaValida reporta si la categoría pertenece al conjunto cerrado.
func (c Catalogos) CategoriaValida(categoria string) bool {
	for _, v := range c.Categorias {
		if v == categoria {
			return true
		}
	}
	return false
}

// UnidadValida reporta si la unidad de medida pertenece al conjunto cerrado.
func (c Catalogos) UnidadValida(unidad string) bool {
	for _, v := range c.Unidades {
		if v == unidad {
			return true
		}
	}
	return false
}
