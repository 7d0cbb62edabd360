package render

// One program per vertex shape. The color and textured 2-D programs take
// clip-space positions straight through; the model program applies the
// camera and a per-instance transform.

const colorVertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 vColor;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const colorFragmentSrc = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// Atlas UVs arrive in absolute pixels and are normalized here, so CPU-side
// geometry never needs to know the atlas size.
const atlasVertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in float aAlpha;
layout (location = 3) in float aColorScale;
layout (location = 4) in uint aMeta;

uniform vec2 uAtlasSize;

out vec2 vUV;
out float vAlpha;
out float vColorScale;
flat out uint vMeta;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV / uAtlasSize;
	vAlpha = aAlpha;
	vColorScale = aColorScale;
	vMeta = aMeta;
}
`

const texVertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in float aAlpha;
layout (location = 3) in float aColorScale;
layout (location = 4) in uint aMeta;

out vec2 vUV;
out float vAlpha;
out float vColorScale;
flat out uint vMeta;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV;
	vAlpha = aAlpha;
	vColorScale = aColorScale;
	vMeta = aMeta;
}
`

const texFragmentSrc = `
#version 410 core

in vec2 vUV;
in float vAlpha;
in float vColorScale;
flat in uint vMeta;

uniform sampler2D uTex;

out vec4 FragColor;

void main() {
	vec4 texel = texture(uTex, vUV);
	if ((vMeta & 1u) != 0u) {
		float lum = dot(texel.rgb, vec3(0.299, 0.587, 0.114));
		texel.rgb = vec3(lum);
	}
	FragColor = vec4(texel.rgb * vColorScale, texel.a * vAlpha);
}
`

const modelVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;
layout (location = 3) in mat4 aInstance;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vUV;

void main() {
	gl_Position = uViewProj * aInstance * vec4(aPos, 1.0);
	vNormal = normalize(mat3(aInstance) * aNormal);
	vUV = aUV;
}
`

const modelFragmentSrc = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;

uniform sampler2D uTex;
uniform bool uUseTexture;
uniform vec4 uBaseColor;

out vec4 FragColor;

void main() {
	vec4 base = uBaseColor;
	if (uUseTexture) {
		base *= texture(uTex, vUV);
	}
	vec3 lightDir = normalize(vec3(0.4, 1.0, 0.3));
	float diffuse = max(dot(vNormal, lightDir), 0.0);
	float light = 0.35 + 0.65 * diffuse;
	FragColor = vec4(base.rgb * light, base.a);
}
`
