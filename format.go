package ktx2

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

// Format is a KTX2 texel format, identified by its Vulkan VkFormat value.
type Format uint32

// Formats recognized in the vkFormat header field.
const (
	FormatR4G4UnormPack8           Format = 1
	FormatR4G4B4A4UnormPack16      Format = 2
	FormatB4G4R4A4UnormPack16      Format = 3
	FormatR5G6B5UnormPack16        Format = 4
	FormatB5G6R5UnormPack16        Format = 5
	FormatR5G5B5A1UnormPack16      Format = 6
	FormatB5G5R5A1UnormPack16      Format = 7
	FormatA1R5G5B5UnormPack16      Format = 8
	FormatR8Unorm                  Format = 9
	FormatR8Snorm                  Format = 10
	FormatR8Uscaled                Format = 11
	FormatR8Sscaled                Format = 12
	FormatR8Uint                   Format = 13
	FormatR8Sint                   Format = 14
	FormatR8SRGB                   Format = 15
	FormatR8G8Unorm                Format = 16
	FormatR8G8Snorm                Format = 17
	FormatR8G8Uscaled              Format = 18
	FormatR8G8Sscaled              Format = 19
	FormatR8G8Uint                 Format = 20
	FormatR8G8Sint                 Format = 21
	FormatR8G8SRGB                 Format = 22
	FormatR8G8B8Unorm              Format = 23
	FormatR8G8B8Snorm              Format = 24
	FormatR8G8B8Uscaled            Format = 25
	FormatR8G8B8Sscaled            Format = 26
	FormatR8G8B8Uint               Format = 27
	FormatR8G8B8Sint               Format = 28
	FormatR8G8B8SRGB               Format = 29
	FormatB8G8R8Unorm              Format = 30
	FormatB8G8R8Snorm              Format = 31
	FormatB8G8R8Uscaled            Format = 32
	FormatB8G8R8Sscaled            Format = 33
	FormatB8G8R8Uint               Format = 34
	FormatB8G8R8Sint               Format = 35
	FormatB8G8R8SRGB               Format = 36
	FormatR8G8B8A8Unorm            Format = 37
	FormatR8G8B8A8Snorm            Format = 38
	FormatR8G8B8A8Uscaled          Format = 39
	FormatR8G8B8A8Sscaled          Format = 40
	FormatR8G8B8A8Uint             Format = 41
	FormatR8G8B8A8Sint             Format = 42
	FormatR8G8B8A8SRGB             Format = 43
	FormatB8G8R8A8Unorm            Format = 44
	FormatB8G8R8A8Snorm            Format = 45
	FormatB8G8R8A8Uscaled          Format = 46
	FormatB8G8R8A8Sscaled          Format = 47
	FormatB8G8R8A8Uint             Format = 48
	FormatB8G8R8A8Sint             Format = 49
	FormatB8G8R8A8SRGB             Format = 50
	FormatA8B8G8R8UnormPack32      Format = 51
	FormatA8B8G8R8SnormPack32      Format = 52
	FormatA8B8G8R8UscaledPack32    Format = 53
	FormatA8B8G8R8SscaledPack32    Format = 54
	FormatA8B8G8R8UintPack32       Format = 55
	FormatA8B8G8R8SintPack32       Format = 56
	FormatA8B8G8R8SRGBPack32       Format = 57
	FormatA2R10G10B10UnormPack32   Format = 58
	FormatA2R10G10B10SnormPack32   Format = 59
	FormatA2R10G10B10UscaledPack32 Format = 60
	FormatA2R10G10B10SscaledPack32 Format = 61
	FormatA2R10G10B10UintPack32    Format = 62
	FormatA2R10G10B10SintPack32    Format = 63
	FormatA2B10G10R10UnormPack32   Format = 64
	FormatA2B10G10R10SnormPack32   Format = 65
	FormatA2B10G10R10UscaledPack32 Format = 66
	FormatA2B10G10R10SscaledPack32 Format = 67
	FormatA2B10G10R10UintPack32    Format = 68
	FormatA2B10G10R10SintPack32    Format = 69
	FormatR16Unorm                 Format = 70
	FormatR16Snorm                 Format = 71
	FormatR16Uscaled               Format = 72
	FormatR16Sscaled               Format = 73
	FormatR16Uint                  Format = 74
	FormatR16Sint                  Format = 75
	FormatR16Sfloat                Format = 76
	FormatR16G16Unorm              Format = 77
	FormatR16G16Snorm              Format = 78
	FormatR16G16Uscaled            Format = 79
	FormatR16G16Sscaled            Format = 80
	FormatR16G16Uint               Format = 81
	FormatR16G16Sint               Format = 82
	FormatR16G16Sfloat             Format = 83
	FormatR16G16B16Unorm           Format = 84
	FormatR16G16B16Snorm           Format = 85
	FormatR16G16B16Uscaled         Format = 86
	FormatR16G16B16Sscaled         Format = 87
	FormatR16G16B16Uint            Format = 88
	FormatR16G16B16Sint            Format = 89
	FormatR16G16B16Sfloat          Format = 90
	FormatR16G16B16A16Unorm        Format = 91
	FormatR16G16B16A16Snorm        Format = 92
	FormatR16G16B16A16Uscaled      Format = 93
	FormatR16G16B16A16Sscaled      Format = 94
	FormatR16G16B16A16Uint         Format = 95
	FormatR16G16B16A16Sint         Format = 96
	FormatR16G16B16A16Sfloat       Format = 97
	FormatR32Uint                  Format = 98
	FormatR32Sint                  Format = 99
	FormatR32Sfloat                Format = 100
	FormatR32G32Uint               Format = 101
	FormatR32G32Sint               Format = 102
	FormatR32G32Sfloat             Format = 103
	FormatR32G32B32Uint            Format = 104
	FormatR32G32B32Sint            Format = 105
	FormatR32G32B32Sfloat          Format = 106
	FormatR32G32B32A32Uint         Format = 107
	FormatR32G32B32A32Sint         Format = 108
	FormatR32G32B32A32Sfloat       Format = 109
	FormatR64Uint                  Format = 110
	FormatR64Sint                  Format = 111
	FormatR64Sfloat                Format = 112
	FormatR64G64Uint               Format = 113
	FormatR64G64Sint               Format = 114
	FormatR64G64Sfloat             Format = 115
	FormatR64G64B64Uint            Format = 116
	FormatR64G64B64Sint            Format = 117
	FormatR64G64B64Sfloat          Format = 118
	FormatR64G64B64A64Uint         Format = 119
	FormatR64G64B64A64Sint         Format = 120
	FormatR64G64B64A64Sfloat       Format = 121
	FormatB10G11R11UfloatPack32    Format = 122
	FormatE5B9G9R9UfloatPack32     Format = 123
	FormatD16Unorm                 Format = 124
	FormatX8D24UnormPack32         Format = 125
	FormatD32Sfloat                Format = 126
	FormatS8Uint                   Format = 127
	FormatD16UnormS8Uint           Format = 128
	FormatD24UnormS8Uint           Format = 129
	FormatD32SfloatS8Uint          Format = 130
	FormatBC1RGBUnormBlock         Format = 131
	FormatBC1RGBSRGBBlock          Format = 132
	FormatBC1RGBAUnormBlock        Format = 133
	FormatBC1RGBASRGBBlock         Format = 134
	FormatBC2UnormBlock            Format = 135
	FormatBC2SRGBBlock             Format = 136
	FormatBC3UnormBlock            Format = 137
	FormatBC3SRGBBlock             Format = 138
	FormatBC4UnormBlock            Format = 139
	FormatBC4SnormBlock            Format = 140
	FormatBC5UnormBlock            Format = 141
	FormatBC5SnormBlock            Format = 142
	FormatBC6HUfloatBlock          Format = 143
	FormatBC6HSfloatBlock          Format = 144
	FormatBC7UnormBlock            Format = 145
	FormatBC7SRGBBlock             Format = 146
	FormatETC2R8G8B8UnormBlock     Format = 147
	FormatETC2R8G8B8SRGBBlock      Format = 148
	FormatETC2R8G8B8A1UnormBlock   Format = 149
	FormatETC2R8G8B8A1SRGBBlock    Format = 150
	FormatETC2R8G8B8A8UnormBlock   Format = 151
	FormatETC2R8G8B8A8SRGBBlock    Format = 152
	FormatEACR11UnormBlock         Format = 153
	FormatEACR11SnormBlock         Format = 154
	FormatEACR11G11UnormBlock      Format = 155
	FormatEACR11G11SnormBlock      Format = 156
	FormatASTC4x4UnormBlock        Format = 157
	FormatASTC4x4SRGBBlock         Format = 158
	FormatASTC5x4UnormBlock        Format = 159
	FormatASTC5x4SRGBBlock         Format = 160
	FormatASTC5x5UnormBlock        Format = 161
	FormatASTC5x5SRGBBlock         Format = 162
	FormatASTC6x5UnormBlock        Format = 163
	FormatASTC6x5SRGBBlock         Format = 164
	FormatASTC6x6UnormBlock        Format = 165
	FormatASTC6x6SRGBBlock         Format = 166
	FormatASTC8x5UnormBlock        Format = 167
	FormatASTC8x5SRGBBlock         Format = 168
	FormatASTC8x6UnormBlock        Format = 169
	FormatASTC8x6SRGBBlock         Format = 170
	FormatASTC8x8UnormBlock        Format = 171
	FormatASTC8x8SRGBBlock         Format = 172
	FormatASTC10x5UnormBlock       Format = 173
	FormatASTC10x5SRGBBlock        Format = 174
	FormatASTC10x6UnormBlock       Format = 175
	FormatASTC10x6SRGBBlock        Format = 176
	FormatASTC10x8UnormBlock       Format = 177
	FormatASTC10x8SRGBBlock        Format = 178
	FormatASTC10x10UnormBlock      Format = 179
	FormatASTC10x10SRGBBlock       Format = 180
	FormatASTC12x10UnormBlock      Format = 181
	FormatASTC12x10SRGBBlock       Format = 182
	FormatASTC12x12UnormBlock      Format = 183
	FormatASTC12x12SRGBBlock       Format = 184
	FormatPVRTC12BPPUnormBlock     Format = 1000054000
	FormatPVRTC14BPPUnormBlock     Format = 1000054001
	FormatPVRTC22BPPUnormBlock     Format = 1000054002
	FormatPVRTC24BPPUnormBlock     Format = 1000054003
	FormatPVRTC12BPPSRGBBlock      Format = 1000054004
	FormatPVRTC14BPPSRGBBlock      Format = 1000054005
	FormatPVRTC22BPPSRGBBlock      Format = 1000054006
	FormatPVRTC24BPPSRGBBlock      Format = 1000054007
	FormatASTC4x4SfloatBlock       Format = 1000066000
	FormatASTC5x4SfloatBlock       Format = 1000066001
	FormatASTC5x5SfloatBlock       Format = 1000066002
	FormatASTC6x5SfloatBlock       Format = 1000066003
	FormatASTC6x6SfloatBlock       Format = 1000066004
	FormatASTC8x5SfloatBlock       Format = 1000066005
	FormatASTC8x6SfloatBlock       Format = 1000066006
	FormatASTC8x8SfloatBlock       Format = 1000066007
	FormatASTC10x5SfloatBlock      Format = 1000066008
	FormatASTC10x6SfloatBlock      Format = 1000066009
	FormatASTC10x8SfloatBlock      Format = 1000066010
	FormatASTC10x10SfloatBlock     Format = 1000066011
	FormatASTC12x10SfloatBlock     Format = 1000066012
	FormatASTC12x12SfloatBlock     Format = 1000066013
	FormatA4R4G4B4UnormPack16      Format = 1000340000
	FormatA4B4G4R4UnormPack16      Format = 1000340001
)

// formatNames is the registry of recognized vkFormat values.
var formatNames = map[Format]string{
	FormatR4G4UnormPack8:           "R4G4_UNORM_PACK8",
	FormatR4G4B4A4UnormPack16:      "R4G4B4A4_UNORM_PACK16",
	FormatB4G4R4A4UnormPack16:      "B4G4R4A4_UNORM_PACK16",
	FormatR5G6B5UnormPack16:        "R5G6B5_UNORM_PACK16",
	FormatB5G6R5UnormPack16:        "B5G6R5_UNORM_PACK16",
	FormatR5G5B5A1UnormPack16:      "R5G5B5A1_UNORM_PACK16",
	FormatB5G5R5A1UnormPack16:      "B5G5R5A1_UNORM_PACK16",
	FormatA1R5G5B5UnormPack16:      "A1R5G5B5_UNORM_PACK16",
	FormatR8Unorm:                  "R8_UNORM",
	FormatR8Snorm:                  "R8_SNORM",
	FormatR8Uscaled:                "R8_USCALED",
	FormatR8Sscaled:                "R8_SSCALED",
	FormatR8Uint:                   "R8_UINT",
	FormatR8Sint:                   "R8_SINT",
	FormatR8SRGB:                   "R8_SRGB",
	FormatR8G8Unorm:                "R8G8_UNORM",
	FormatR8G8Snorm:                "R8G8_SNORM",
	FormatR8G8Uscaled:              "R8G8_USCALED",
	FormatR8G8Sscaled:              "R8G8_SSCALED",
	FormatR8G8Uint:                 "R8G8_UINT",
	FormatR8G8Sint:                 "R8G8_SINT",
	FormatR8G8SRGB:                 "R8G8_SRGB",
	FormatR8G8B8Unorm:              "R8G8B8_UNORM",
	FormatR8G8B8Snorm:              "R8G8B8_SNORM",
	FormatR8G8B8Uscaled:            "R8G8B8_USCALED",
	FormatR8G8B8Sscaled:            "R8G8B8_SSCALED",
	FormatR8G8B8Uint:               "R8G8B8_UINT",
	FormatR8G8B8Sint:               "R8G8B8_SINT",
	FormatR8G8B8SRGB:               "R8G8B8_SRGB",
	FormatB8G8R8Unorm:              "B8G8R8_UNORM",
	FormatB8G8R8Snorm:              "B8G8R8_SNORM",
	FormatB8G8R8Uscaled:            "B8G8R8_USCALED",
	FormatB8G8R8Sscaled:            "B8G8R8_SSCALED",
	FormatB8G8R8Uint:               "B8G8R8_UINT",
	FormatB8G8R8Sint:               "B8G8R8_SINT",
	FormatB8G8R8SRGB:               "B8G8R8_SRGB",
	FormatR8G8B8A8Unorm:            "R8G8B8A8_UNORM",
	FormatR8G8B8A8Snorm:            "R8G8B8A8_SNORM",
	FormatR8G8B8A8Uscaled:          "R8G8B8A8_USCALED",
	FormatR8G8B8A8Sscaled:          "R8G8B8A8_SSCALED",
	FormatR8G8B8A8Uint:             "R8G8B8A8_UINT",
	FormatR8G8B8A8Sint:             "R8G8B8A8_SINT",
	FormatR8G8B8A8SRGB:             "R8G8B8A8_SRGB",
	FormatB8G8R8A8Unorm:            "B8G8R8A8_UNORM",
	FormatB8G8R8A8Snorm:            "B8G8R8A8_SNORM",
	FormatB8G8R8A8Uscaled:          "B8G8R8A8_USCALED",
	FormatB8G8R8A8Sscaled:          "B8G8R8A8_SSCALED",
	FormatB8G8R8A8Uint:             "B8G8R8A8_UINT",
	FormatB8G8R8A8Sint:             "B8G8R8A8_SINT",
	FormatB8G8R8A8SRGB:             "B8G8R8A8_SRGB",
	FormatA8B8G8R8UnormPack32:      "A8B8G8R8_UNORM_PACK32",
	FormatA8B8G8R8SnormPack32:      "A8B8G8R8_SNORM_PACK32",
	FormatA8B8G8R8UscaledPack32:    "A8B8G8R8_USCALED_PACK32",
	FormatA8B8G8R8SscaledPack32:    "A8B8G8R8_SSCALED_PACK32",
	FormatA8B8G8R8UintPack32:       "A8B8G8R8_UINT_PACK32",
	FormatA8B8G8R8SintPack32:       "A8B8G8R8_SINT_PACK32",
	FormatA8B8G8R8SRGBPack32:       "A8B8G8R8_SRGB_PACK32",
	FormatA2R10G10B10UnormPack32:   "A2R10G10B10_UNORM_PACK32",
	FormatA2R10G10B10SnormPack32:   "A2R10G10B10_SNORM_PACK32",
	FormatA2R10G10B10UscaledPack32: "A2R10G10B10_USCALED_PACK32",
	FormatA2R10G10B10SscaledPack32: "A2R10G10B10_SSCALED_PACK32",
	FormatA2R10G10B10UintPack32:    "A2R10G10B10_UINT_PACK32",
	FormatA2R10G10B10SintPack32:    "A2R10G10B10_SINT_PACK32",
	FormatA2B10G10R10UnormPack32:   "A2B10G10R10_UNORM_PACK32",
	FormatA2B10G10R10SnormPack32:   "A2B10G10R10_SNORM_PACK32",
	FormatA2B10G10R10UscaledPack32: "A2B10G10R10_USCALED_PACK32",
	FormatA2B10G10R10SscaledPack32: "A2B10G10R10_SSCALED_PACK32",
	FormatA2B10G10R10UintPack32:    "A2B10G10R10_UINT_PACK32",
	FormatA2B10G10R10SintPack32:    "A2B10G10R10_SINT_PACK32",
	FormatR16Unorm:                 "R16_UNORM",
	FormatR16Snorm:                 "R16_SNORM",
	FormatR16Uscaled:               "R16_USCALED",
	FormatR16Sscaled:               "R16_SSCALED",
	FormatR16Uint:                  "R16_UINT",
	FormatR16Sint:                  "R16_SINT",
	FormatR16Sfloat:                "R16_SFLOAT",
	FormatR16G16Unorm:              "R16G16_UNORM",
	FormatR16G16Snorm:              "R16G16_SNORM",
	FormatR16G16Uscaled:            "R16G16_USCALED",
	FormatR16G16Sscaled:            "R16G16_SSCALED",
	FormatR16G16Uint:               "R16G16_UINT",
	FormatR16G16Sint:               "R16G16_SINT",
	FormatR16G16Sfloat:             "R16G16_SFLOAT",
	FormatR16G16B16Unorm:           "R16G16B16_UNORM",
	FormatR16G16B16Snorm:           "R16G16B16_SNORM",
	FormatR16G16B16Uscaled:         "R16G16B16_USCALED",
	FormatR16G16B16Sscaled:         "R16G16B16_SSCALED",
	FormatR16G16B16Uint:            "R16G16B16_UINT",
	FormatR16G16B16Sint:            "R16G16B16_SINT",
	FormatR16G16B16Sfloat:          "R16G16B16_SFLOAT",
	FormatR16G16B16A16Unorm:        "R16G16B16A16_UNORM",
	FormatR16G16B16A16Snorm:        "R16G16B16A16_SNORM",
	FormatR16G16B16A16Uscaled:      "R16G16B16A16_USCALED",
	FormatR16G16B16A16Sscaled:      "R16G16B16A16_SSCALED",
	FormatR16G16B16A16Uint:         "R16G16B16A16_UINT",
	FormatR16G16B16A16Sint:         "R16G16B16A16_SINT",
	FormatR16G16B16A16Sfloat:       "R16G16B16A16_SFLOAT",
	FormatR32Uint:                  "R32_UINT",
	FormatR32Sint:                  "R32_SINT",
	FormatR32Sfloat:                "R32_SFLOAT",
	FormatR32G32Uint:               "R32G32_UINT",
	FormatR32G32Sint:               "R32G32_SINT",
	FormatR32G32Sfloat:             "R32G32_SFLOAT",
	FormatR32G32B32Uint:            "R32G32B32_UINT",
	FormatR32G32B32Sint:            "R32G32B32_SINT",
	FormatR32G32B32Sfloat:          "R32G32B32_SFLOAT",
	FormatR32G32B32A32Uint:         "R32G32B32A32_UINT",
	FormatR32G32B32A32Sint:         "R32G32B32A32_SINT",
	FormatR32G32B32A32Sfloat:       "R32G32B32A32_SFLOAT",
	FormatR64Uint:                  "R64_UINT",
	FormatR64Sint:                  "R64_SINT",
	FormatR64Sfloat:                "R64_SFLOAT",
	FormatR64G64Uint:               "R64G64_UINT",
	FormatR64G64Sint:               "R64G64_SINT",
	FormatR64G64Sfloat:             "R64G64_SFLOAT",
	FormatR64G64B64Uint:            "R64G64B64_UINT",
	FormatR64G64B64Sint:            "R64G64B64_SINT",
	FormatR64G64B64Sfloat:          "R64G64B64_SFLOAT",
	FormatR64G64B64A64Uint:         "R64G64B64A64_UINT",
	FormatR64G64B64A64Sint:         "R64G64B64A64_SINT",
	FormatR64G64B64A64Sfloat:       "R64G64B64A64_SFLOAT",
	FormatB10G11R11UfloatPack32:    "B10G11R11_UFLOAT_PACK32",
	FormatE5B9G9R9UfloatPack32:     "E5B9G9R9_UFLOAT_PACK32",
	FormatD16Unorm:                 "D16_UNORM",
	FormatX8D24UnormPack32:         "X8_D24_UNORM_PACK32",
	FormatD32Sfloat:                "D32_SFLOAT",
	FormatS8Uint:                   "S8_UINT",
	FormatD16UnormS8Uint:           "D16_UNORM_S8_UINT",
	FormatD24UnormS8Uint:           "D24_UNORM_S8_UINT",
	FormatD32SfloatS8Uint:          "D32_SFLOAT_S8_UINT",
	FormatBC1RGBUnormBlock:         "BC1_RGB_UNORM_BLOCK",
	FormatBC1RGBSRGBBlock:          "BC1_RGB_SRGB_BLOCK",
	FormatBC1RGBAUnormBlock:        "BC1_RGBA_UNORM_BLOCK",
	FormatBC1RGBASRGBBlock:         "BC1_RGBA_SRGB_BLOCK",
	FormatBC2UnormBlock:            "BC2_UNORM_BLOCK",
	FormatBC2SRGBBlock:             "BC2_SRGB_BLOCK",
	FormatBC3UnormBlock:            "BC3_UNORM_BLOCK",
	FormatBC3SRGBBlock:             "BC3_SRGB_BLOCK",
	FormatBC4UnormBlock:            "BC4_UNORM_BLOCK",
	FormatBC4SnormBlock:            "BC4_SNORM_BLOCK",
	FormatBC5UnormBlock:            "BC5_UNORM_BLOCK",
	FormatBC5SnormBlock:            "BC5_SNORM_BLOCK",
	FormatBC6HUfloatBlock:          "BC6H_UFLOAT_BLOCK",
	FormatBC6HSfloatBlock:          "BC6H_SFLOAT_BLOCK",
	FormatBC7UnormBlock:            "BC7_UNORM_BLOCK",
	FormatBC7SRGBBlock:             "BC7_SRGB_BLOCK",
	FormatETC2R8G8B8UnormBlock:     "ETC2_R8G8B8_UNORM_BLOCK",
	FormatETC2R8G8B8SRGBBlock:      "ETC2_R8G8B8_SRGB_BLOCK",
	FormatETC2R8G8B8A1UnormBlock:   "ETC2_R8G8B8A1_UNORM_BLOCK",
	FormatETC2R8G8B8A1SRGBBlock:    "ETC2_R8G8B8A1_SRGB_BLOCK",
	FormatETC2R8G8B8A8UnormBlock:   "ETC2_R8G8B8A8_UNORM_BLOCK",
	FormatETC2R8G8B8A8SRGBBlock:    "ETC2_R8G8B8A8_SRGB_BLOCK",
	FormatEACR11UnormBlock:         "EAC_R11_UNORM_BLOCK",
	FormatEACR11SnormBlock:         "EAC_R11_SNORM_BLOCK",
	FormatEACR11G11UnormBlock:      "EAC_R11G11_UNORM_BLOCK",
	FormatEACR11G11SnormBlock:      "EAC_R11G11_SNORM_BLOCK",
	FormatASTC4x4UnormBlock:        "ASTC_4x4_UNORM_BLOCK",
	FormatASTC4x4SRGBBlock:         "ASTC_4x4_SRGB_BLOCK",
	FormatASTC5x4UnormBlock:        "ASTC_5x4_UNORM_BLOCK",
	FormatASTC5x4SRGBBlock:         "ASTC_5x4_SRGB_BLOCK",
	FormatASTC5x5UnormBlock:        "ASTC_5x5_UNORM_BLOCK",
	FormatASTC5x5SRGBBlock:         "ASTC_5x5_SRGB_BLOCK",
	FormatASTC6x5UnormBlock:        "ASTC_6x5_UNORM_BLOCK",
	FormatASTC6x5SRGBBlock:         "ASTC_6x5_SRGB_BLOCK",
	FormatASTC6x6UnormBlock:        "ASTC_6x6_UNORM_BLOCK",
	FormatASTC6x6SRGBBlock:         "ASTC_6x6_SRGB_BLOCK",
	FormatASTC8x5UnormBlock:        "ASTC_8x5_UNORM_BLOCK",
	FormatASTC8x5SRGBBlock:         "ASTC_8x5_SRGB_BLOCK",
	FormatASTC8x6UnormBlock:        "ASTC_8x6_UNORM_BLOCK",
	FormatASTC8x6SRGBBlock:         "ASTC_8x6_SRGB_BLOCK",
	FormatASTC8x8UnormBlock:        "ASTC_8x8_UNORM_BLOCK",
	FormatASTC8x8SRGBBlock:         "ASTC_8x8_SRGB_BLOCK",
	FormatASTC10x5UnormBlock:       "ASTC_10x5_UNORM_BLOCK",
	FormatASTC10x5SRGBBlock:        "ASTC_10x5_SRGB_BLOCK",
	FormatASTC10x6UnormBlock:       "ASTC_10x6_UNORM_BLOCK",
	FormatASTC10x6SRGBBlock:        "ASTC_10x6_SRGB_BLOCK",
	FormatASTC10x8UnormBlock:       "ASTC_10x8_UNORM_BLOCK",
	FormatASTC10x8SRGBBlock:        "ASTC_10x8_SRGB_BLOCK",
	FormatASTC10x10UnormBlock:      "ASTC_10x10_UNORM_BLOCK",
	FormatASTC10x10SRGBBlock:       "ASTC_10x10_SRGB_BLOCK",
	FormatASTC12x10UnormBlock:      "ASTC_12x10_UNORM_BLOCK",
	FormatASTC12x10SRGBBlock:       "ASTC_12x10_SRGB_BLOCK",
	FormatASTC12x12UnormBlock:      "ASTC_12x12_UNORM_BLOCK",
	FormatASTC12x12SRGBBlock:       "ASTC_12x12_SRGB_BLOCK",
	FormatPVRTC12BPPUnormBlock:     "PVRTC1_2BPP_UNORM_BLOCK",
	FormatPVRTC14BPPUnormBlock:     "PVRTC1_4BPP_UNORM_BLOCK",
	FormatPVRTC22BPPUnormBlock:     "PVRTC2_2BPP_UNORM_BLOCK",
	FormatPVRTC24BPPUnormBlock:     "PVRTC2_4BPP_UNORM_BLOCK",
	FormatPVRTC12BPPSRGBBlock:      "PVRTC1_2BPP_SRGB_BLOCK",
	FormatPVRTC14BPPSRGBBlock:      "PVRTC1_4BPP_SRGB_BLOCK",
	FormatPVRTC22BPPSRGBBlock:      "PVRTC2_2BPP_SRGB_BLOCK",
	FormatPVRTC24BPPSRGBBlock:      "PVRTC2_4BPP_SRGB_BLOCK",
	FormatASTC4x4SfloatBlock:       "ASTC_4x4_SFLOAT_BLOCK",
	FormatASTC5x4SfloatBlock:       "ASTC_5x4_SFLOAT_BLOCK",
	FormatASTC5x5SfloatBlock:       "ASTC_5x5_SFLOAT_BLOCK",
	FormatASTC6x5SfloatBlock:       "ASTC_6x5_SFLOAT_BLOCK",
	FormatASTC6x6SfloatBlock:       "ASTC_6x6_SFLOAT_BLOCK",
	FormatASTC8x5SfloatBlock:       "ASTC_8x5_SFLOAT_BLOCK",
	FormatASTC8x6SfloatBlock:       "ASTC_8x6_SFLOAT_BLOCK",
	FormatASTC8x8SfloatBlock:       "ASTC_8x8_SFLOAT_BLOCK",
	FormatASTC10x5SfloatBlock:      "ASTC_10x5_SFLOAT_BLOCK",
	FormatASTC10x6SfloatBlock:      "ASTC_10x6_SFLOAT_BLOCK",
	FormatASTC10x8SfloatBlock:      "ASTC_10x8_SFLOAT_BLOCK",
	FormatASTC10x10SfloatBlock:     "ASTC_10x10_SFLOAT_BLOCK",
	FormatASTC12x10SfloatBlock:     "ASTC_12x10_SFLOAT_BLOCK",
	FormatASTC12x12SfloatBlock:     "ASTC_12x12_SFLOAT_BLOCK",
	FormatA4R4G4B4UnormPack16:      "A4R4G4B4_UNORM_PACK16",
	FormatA4B4G4R4UnormPack16:      "A4B4G4R4_UNORM_PACK16",
}

// parseFormat resolves a raw vkFormat value through the registry.
func parseFormat(id uint32) (Format, error) {
	format := Format(id)
	if _, ok := formatNames[format]; !ok {
		return 0, &FormatError{ID: id}
	}

	return format, nil
}

// String returns the Vulkan name of the format without the VK_FORMAT_ prefix.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", uint32(f))
}

// IsBlockCompressed reports whether texels are stored in fixed-size blocks
// (BCn, ETC2, EAC, ASTC, PVRTC).
func (f Format) IsBlockCompressed() bool {
	switch {
	case f >= FormatBC1RGBUnormBlock && f <= FormatASTC12x12SRGBBlock:
		return true
	case f >= FormatPVRTC12BPPUnormBlock && f <= FormatPVRTC24BPPSRGBBlock:
		return true
	case f >= FormatASTC4x4SfloatBlock && f <= FormatASTC12x12SfloatBlock:
		return true
	default:
		return false
	}
}

// BCn returns the bcn decoder format with the same texel layout, or
// bcn.FormatUnknown when bcn has no equivalent. sRGB and UNORM variants
// share a layout and map to the same value.
func (f Format) BCn() bcn.Format {
	switch f {
	case FormatBC1RGBUnormBlock, FormatBC1RGBSRGBBlock,
		FormatBC1RGBAUnormBlock, FormatBC1RGBASRGBBlock:
		return bcn.FormatDXT1
	case FormatBC2UnormBlock, FormatBC2SRGBBlock:
		return bcn.FormatDXT3
	case FormatBC3UnormBlock, FormatBC3SRGBBlock:
		return bcn.FormatDXT5
	case FormatBC4UnormBlock, FormatBC4SnormBlock:
		return bcn.FormatBC4
	case FormatBC5UnormBlock, FormatBC5SnormBlock:
		return bcn.FormatBC5
	case FormatR8G8B8A8Unorm, FormatR8G8B8A8SRGB:
		return bcn.FormatRGBA8
	case FormatB8G8R8A8Unorm, FormatB8G8R8A8SRGB:
		return bcn.FormatBGRA8
	default:
		return bcn.FormatUnknown
	}
}
