/*
Package trie provides a prefix tree for storing words and enumerating them
by prefix. It supports membership tests, prefix tests, autocompletion and
optional case folding and normalisation of keys.
*/
package trie
