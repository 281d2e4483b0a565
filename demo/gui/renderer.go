package gui

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"texbillboard/camera"
	"texbillboard/common"
	"texbillboard/demo/config"
	"texbillboard/demo/lib/canvas"
	"texbillboard/demo/lib/glfont"
	"texbillboard/scene"
)

const (
	MAX_TEXTURE_SIZE  = 4096
	CHECKERBOARD_SIZE = 512
	SPRITE_SIZE       = 256
	HUD_FONT_SIZE     = 16
)

// uniform block binding points
const (
	BINDING_MATRICES = iota + 1
	BINDING_LIGHT
	BINDING_FLOOR_MATERIAL
	BINDING_BILLBOARD_MATERIAL
)

// Renderer owns every GL object of the scene. It must only be used on the
// thread that owns the GL context.
type Renderer struct {
	log    *zap.Logger
	props  *config.PropsConfig
	wcfg   *config.WindowConfig
	camera *camera.Orbit

	plane             *scene.UnitPlane
	billboard         *scene.Billboard
	light             scene.Light
	floorMaterial     scene.Material
	billboardMaterial scene.Material

	program           uint32
	uniCameraPosition int32
	uniObjTex         int32
	uniHasObjTex      int32
	blockMatrices     uint32
	blockLight        uint32
	blockMaterial     uint32

	uboMatrices          *canvas.UniformBuffer
	uboLight             *canvas.UniformBuffer
	uboFloorMaterial     *canvas.UniformBuffer
	uboBillboardMaterial *canvas.UniformBuffer

	vboPlane, iboPlane, vaoPlane             uint32
	vboBillboard, iboBillboard, vaoBillboard uint32

	floorTexture     uint32
	billboardTexture uint32
	anisotropy       canvas.Anisotropy

	projection  mgl32.Mat4
	floorModel  mgl32.Mat4
	floorNormal mgl32.Mat4

	width, height int

	hud      *canvas.Quad
	font     *glfont.Font
	hudDirty bool
}

func NewRenderer(log *zap.Logger, cfg *config.Config, cam *camera.Orbit) *Renderer {
	return &Renderer{
		log:               log,
		props:             cfg.PropsConfig,
		wcfg:              cfg.WindowConfig,
		camera:            cam,
		plane:             scene.NewUnitPlane(),
		billboard:         scene.NewBillboard(),
		light:             scene.NewLight(),
		floorMaterial:     scene.FloorMaterial(),
		billboardMaterial: scene.BillboardMaterial(),
		hudDirty:          true,
	}
}

// Init creates all GL resources. The context must be current.
func (r *Renderer) Init(width, height int) error {
	if err := r.initProgram(); err != nil {
		return err
	}
	if err := r.initTextures(); err != nil {
		return err
	}
	r.initSceneMemory()
	r.initSharedBlockUniform()
	if err := r.initHud(); err != nil {
		return err
	}

	r.SetPlaneSize(r.props.PlaneSize)
	r.SetDepthTest(r.props.DepthTest)
	r.SetZAxisRotation(r.props.ZAxisRotation)
	r.Resize(width, height)
	return nil
}

func (r *Renderer) initProgram() error {
	var err error
	r.program, err = canvas.NewProgram(phongVertexShader, phongFragmentShader)
	if err != nil {
		return fmt.Errorf("phong program: %w", err)
	}
	if r.uniCameraPosition, err = canvas.UniformLocation(r.program, "cameraPosition"); err != nil {
		return err
	}
	if r.uniObjTex, err = canvas.UniformLocation(r.program, "objTex"); err != nil {
		return err
	}
	if r.uniHasObjTex, err = canvas.UniformLocation(r.program, "hasObjTex"); err != nil {
		return err
	}
	if r.blockMatrices, err = canvas.UniformBlockIndex(r.program, "Matrices"); err != nil {
		return err
	}
	if r.blockLight, err = canvas.UniformBlockIndex(r.program, "Light"); err != nil {
		return err
	}
	if r.blockMaterial, err = canvas.UniformBlockIndex(r.program, "Material"); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) loadImage(path string, fallback func() *image.RGBA) (*image.RGBA, error) {
	if path == "" {
		return fallback(), nil
	}
	img, err := canvas.LoadImage(path)
	if err != nil {
		return nil, err
	}
	r.log.Info("texture loaded", zap.String("path", path), zap.Stringer("size", img.Bounds().Size()))
	return scene.ToRGBA(img, MAX_TEXTURE_SIZE), nil
}

func (r *Renderer) initTextures() error {
	r.anisotropy = canvas.DetectAnisotropy()
	r.log.Info("GL_EXT_texture_filter_anisotropic",
		zap.Bool("enabled", r.anisotropy.Supported),
		zap.Float32("max", r.anisotropy.Max))

	floor, err := r.loadImage(r.wcfg.FloorTexture, func() *image.RGBA {
		return scene.Checkerboard(CHECKERBOARD_SIZE, 8)
	})
	if err != nil {
		return err
	}
	r.floorTexture, err = canvas.NewTexture(scene.FlipVertical(floor), canvas.TextureOptions{
		WrapS:  gl.REPEAT,
		WrapT:  gl.REPEAT,
		Filter: canvas.GLFilter(r.props.FilterMode),
		Mipmap: true,
	})
	if err != nil {
		return fmt.Errorf("floor texture: %w", err)
	}

	sprite, err := r.loadImage(r.wcfg.BillboardTexture, func() *image.RGBA {
		return scene.Sprite(SPRITE_SIZE)
	})
	if err != nil {
		return err
	}
	r.billboardTexture, err = canvas.NewTexture(sprite, canvas.TextureOptions{
		WrapS:  gl.CLAMP_TO_EDGE,
		WrapT:  gl.CLAMP_TO_EDGE,
		Filter: gl.LINEAR_MIPMAP_LINEAR,
		Mipmap: true,
	})
	if err != nil {
		return fmt.Errorf("billboard texture: %w", err)
	}
	return nil
}

func (r *Renderer) initSceneMemory() {
	r.vboPlane, r.iboPlane, r.vaoPlane = r.initPlaneMemory(r.plane.TexCoords(float32(r.props.PlaneSize)))
	r.vboBillboard, r.iboBillboard, r.vaoBillboard = r.initPlaneMemory(r.plane.TexCoords(1))
}

func (r *Renderer) initPlaneMemory(texCoords []float32) (vbo, ibo, vao uint32) {
	p := r.plane
	vbo = canvas.NewBuffer(gl.ARRAY_BUFFER, p.BufferSize(), gl.STATIC_DRAW)
	canvas.WriteFloats(gl.ARRAY_BUFFER, vbo, 0, p.Vertices())
	canvas.WriteFloats(gl.ARRAY_BUFFER, vbo, p.VertexOffset(), p.Normals())
	canvas.WriteFloats(gl.ARRAY_BUFFER, vbo, 2*p.VertexOffset(), texCoords)
	ibo = canvas.NewIndexBuffer(p.Indices())
	vao = canvas.MakeVao(vbo, ibo,
		canvas.VertexAttrib{Index: 0, Size: 3, Offset: 0},
		canvas.VertexAttrib{Index: 1, Size: 3, Offset: p.VertexOffset()},
		canvas.VertexAttrib{Index: 2, Size: 2, Offset: 2 * p.VertexOffset()},
	)
	return vbo, ibo, vao
}

func (r *Renderer) initSharedBlockUniform() {
	r.uboMatrices = canvas.NewUniformBuffer(BINDING_MATRICES, 3*canvas.SIZE_OF_MAT4)

	r.uboLight = canvas.NewUniformBuffer(BINDING_LIGHT, r.light.Size())
	r.uboLight.Write(0, r.light.Floats())

	r.uboFloorMaterial = canvas.NewUniformBuffer(BINDING_FLOOR_MATERIAL, r.floorMaterial.Size())
	r.uboFloorMaterial.Write(0, r.floorMaterial.Floats())

	r.uboBillboardMaterial = canvas.NewUniformBuffer(BINDING_BILLBOARD_MATERIAL, r.billboardMaterial.Size())
	r.uboBillboardMaterial.Write(0, r.billboardMaterial.Floats())
}

func (r *Renderer) initHud() error {
	var err error
	if r.font, err = glfont.LoadFont(nil, HUD_FONT_SIZE); err != nil {
		return err
	}
	if r.hud, err = canvas.NewQuad(); err != nil {
		return fmt.Errorf("hud: %w", err)
	}
	return nil
}

// Resize follows the framebuffer size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.projection = scene.Projection(width, height)
}

func (r *Renderer) SetFilterMode(mode config.FilterMode) {
	r.props.FilterMode = mode
	canvas.SetFilter(r.floorTexture, mode)
	r.changed("filter", mode.String())
}

func (r *Renderer) SetAnisotropic(enabled bool) {
	r.props.Anisotropic = enabled
	r.changed("anisotropic", enabled)
}

// SetPlaneSize rescales the floor and repeats its texture size times.
func (r *Renderer) SetPlaneSize(size int) {
	r.props.SetPlaneSize(size)
	r.floorModel = scene.FloorModel(r.props.PlaneSize)
	r.floorNormal = common.NormalMatrix(r.floorModel)
	canvas.WriteFloats(gl.ARRAY_BUFFER, r.vboPlane, 2*r.plane.VertexOffset(),
		r.plane.TexCoords(float32(r.props.PlaneSize)))
	r.changed("planeSize", r.props.PlaneSize)
}

func (r *Renderer) SetDepthTest(enabled bool) {
	r.props.DepthTest = enabled
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	r.changed("depthTest", enabled)
}

func (r *Renderer) SetZAxisRotation(enabled bool) {
	r.props.ZAxisRotation = enabled
	r.camera.EnableZAxisRotation(enabled)
	r.changed("zAxisRotation", enabled)
}

func (r *Renderer) ResetCamera() {
	r.camera.Reset()
	r.log.Debug("camera reset")
}

func (r *Renderer) ToggleHud() {
	r.wcfg.ShowHud = !r.wcfg.ShowHud
}

func (r *Renderer) changed(name string, value any) {
	r.hudDirty = true
	r.log.Debug("parameter changed", zap.String("name", name), zap.Any("value", value))
}

// Paint advances the camera one frame and draws the scene.
func (r *Renderer) Paint() {
	r.camera.Advance()
	viewProjection := r.projection.Mul4(r.camera.ViewMatrix())
	r.uboMatrices.WriteMat4(2*canvas.SIZE_OF_MAT4, viewProjection)

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(0.8, 0.8, 0.8, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	pos := r.camera.Position()
	gl.Uniform3f(r.uniCameraPosition, pos[0], pos[1], pos[2])
	gl.Uniform1i(r.uniObjTex, 0)
	r.uboMatrices.Bind(r.program, r.blockMatrices)
	r.uboLight.Bind(r.program, r.blockLight)

	r.renderFloor()
	r.renderBillboard()
	gl.UseProgram(0)

	r.renderHud()
}

func (r *Renderer) renderFloor() {
	r.uboMatrices.WriteMat4(0, r.floorModel)
	r.uboMatrices.WriteMat4(canvas.SIZE_OF_MAT4, r.floorNormal)

	gl.Uniform1i(r.uniHasObjTex, 1)
	r.uboFloorMaterial.Bind(r.program, r.blockMaterial)

	gl.BindVertexArray(r.vaoPlane)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.floorTexture)
	r.anisotropy.Apply(r.props.Anisotropic)
	gl.DrawElements(gl.TRIANGLES, int32(r.plane.NumIndices()), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) renderBillboard() {
	cameraDir := r.camera.Position().Sub(r.camera.Focus())
	model := r.billboard.Model(cameraDir)
	r.uboMatrices.WriteMat4(0, model)
	r.uboMatrices.WriteMat4(canvas.SIZE_OF_MAT4, r.billboard.NormalMatrix(model))

	gl.Uniform1i(r.uniHasObjTex, 1)
	r.uboBillboardMaterial.Bind(r.program, r.blockMaterial)

	gl.BindVertexArray(r.vaoBillboard)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.billboardTexture)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawElements(gl.TRIANGLES, int32(r.plane.NumIndices()), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.Disable(gl.BLEND)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) renderHud() {
	if !r.wcfg.ShowHud {
		return
	}
	if r.hudDirty {
		img, err := r.font.Render(append(r.props.Lines(), helpLines...))
		if err != nil {
			r.log.Warn("hud render failed", zap.Error(err))
			r.wcfg.ShowHud = false
			return
		}
		if err = r.hud.SetImage(img); err != nil {
			r.log.Warn("hud upload failed", zap.Error(err))
			r.wcfg.ShowHud = false
			return
		}
		r.hudDirty = false
	}
	r.hud.Draw(10, 10, r.width, r.height)
}

// Close releases all GL resources.
func (r *Renderer) Close() {
	gl.DeleteVertexArrays(1, &r.vaoPlane)
	gl.DeleteVertexArrays(1, &r.vaoBillboard)
	buffers := []uint32{r.vboPlane, r.iboPlane, r.vboBillboard, r.iboBillboard}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	for _, u := range []*canvas.UniformBuffer{r.uboMatrices, r.uboLight, r.uboFloorMaterial, r.uboBillboardMaterial} {
		if u != nil {
			u.Delete()
		}
	}
	textures := []uint32{r.floorTexture, r.billboardTexture}
	gl.DeleteTextures(int32(len(textures)), &textures[0])
	if r.hud != nil {
		r.hud.Close()
	}
	gl.DeleteProgram(r.program)
}
