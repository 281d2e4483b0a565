package gui

var (
	phongVertexShader = `
#version 410 core
layout (location = 0) in vec3 v_coord;
layout (location = 1) in vec3 v_normal;
layout (location = 2) in vec2 v_texcoord;

layout (std140) uniform Matrices
{
    mat4 modelMatrix;
    mat4 normalMatrix;
    mat4 viewProjectionMatrix;
};

out vec3 f_position;
out vec3 f_normal;
out vec2 f_texcoord;

void main()
{
    vec4 worldCoord = modelMatrix * vec4(v_coord, 1.0);
    f_position = worldCoord.xyz;
    f_normal = normalize(mat3(normalMatrix) * v_normal);
    f_texcoord = v_texcoord;
    gl_Position = viewProjectionMatrix * worldCoord;
}
` + "\x00"

	phongFragmentShader = `
#version 410 core
layout (std140) uniform Light
{
    vec4 position;
    vec4 color;
    float intensity;
} light;

layout (std140) uniform Material
{
    vec4 diffuseColor;
    vec4 specularColor;
    float reflection;
    float shininess;
} material;

uniform vec3 cameraPosition;
uniform sampler2D objTex;
uniform bool hasObjTex;

in vec3 f_position;
in vec3 f_normal;
in vec2 f_texcoord;

out vec4 fragColor;

void main()
{
    vec4 surface = hasObjTex ? texture(objTex, f_texcoord) : material.diffuseColor;
    vec3 normal = normalize(f_normal);
    vec3 lightDir = normalize(light.position.xyz - f_position);
    vec3 viewDir = normalize(cameraPosition - f_position);
    vec3 halfDir = normalize(lightDir + viewDir);

    float diffuse = max(dot(normal, lightDir), 0.0);
    float specular = diffuse > 0.0 ? pow(max(dot(normal, halfDir), 0.0), material.shininess) : 0.0;

    vec3 lit = 0.2 * surface.rgb
             + light.intensity * diffuse * light.color.rgb * surface.rgb
             + light.intensity * specular * light.color.rgb * material.specularColor.rgb * material.specularColor.a;
    fragColor = vec4(lit, surface.a);
}
` + "\x00"
)
