package render

// Shader iluminado: sol direcional com termo ambiente (modelo Lambert).
const litVertexShader = `
#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matNormal;

out vec2 fragTexCoord;
out vec3 fragNormal;

void main() {
    fragTexCoord = vertexTexCoord;
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const litFragmentShader = `
#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightDir;  // Já normalizada, aponta para o sol
uniform float ambient;
uniform float diffuse;

out vec4 finalColor;

void main() {
    vec4 texelColor = texture(texture0, fragTexCoord);
    if (texelColor.a < 0.1) discard;

    float lambert = max(dot(normalize(fragNormal), lightDir), 0.0);
    float light = clamp(ambient + diffuse * lambert, 0.0, 1.0);

    finalColor = vec4(texelColor.rgb * colDiffuse.rgb * light, texelColor.a * colDiffuse.a);
}
`

// Shader sem luz para o céu.
const unlitVertexShader = `
#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;

uniform mat4 mvp;

out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertexTexCoord;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const unlitFragmentShader = `
#version 330
in vec2 fragTexCoord;

uniform sampler2D texture0;
uniform vec4 colDiffuse;

out vec4 finalColor;

void main() {
    finalColor = texture(texture0, fragTexCoord) * colDiffuse;
}
`
