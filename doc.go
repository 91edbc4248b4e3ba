/*
Package ktx2 reads KTX2 (Khronos Texture v2) containers.

A KTX2 stream starts with a 12-byte identifier and a fixed header describing
the texel format, base dimensions, layers, faces and mip levels, followed by
a level index that locates each mip level's bytes in the stream. Reader
validates the identifier and header, decodes the level index, derives the
per-level geometry and streams the raw payload without copying or
transcoding it.

Supercompressed streams are detected and rejected. Data format descriptors
and key/value metadata are not interpreted.
*/
package ktx2
