// Package mnist decodes the MNIST handwritten digit dataset into the plain
// float vectors consumed by a Network.
//
// Two sources are supported:
//   - the official IDX binary files (train-images-idx3-ubyte, ...)
//   - Kaggle-style CSV (label,pixel0,...,pixel783)
//
// Pixels are scaled into [0, 1] with Normalize and labels become one-hot
// target vectors with OneHot.
package mnist
